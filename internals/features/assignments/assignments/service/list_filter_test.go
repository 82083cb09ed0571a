package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	asgModel "kelasku_backend/internals/features/assignments/assignments/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, f ListFilter) (string, []any) {
	t.Helper()
	var out []asgModel.AssignmentModel
	stmt := f.Apply(dryRunDB(t)).Find(&out).Statement
	return stmt.SQL.String(), stmt.Vars
}

// Filter student_id harus jadi WHERE di SQL: row siswa lain tidak pernah
// terambil dari database, bukan dibuang setelah fetch.
func TestListFilterStudentOnlyFiltersInSQL(t *testing.T) {
	studentID := uuid.New()
	sql, vars := buildSQL(t, ListFilter{StudentID: &studentID})

	assert.Contains(t, sql, "assignment_student_id = ?")
	assert.Contains(t, vars, studentID)
	assert.NotContains(t, sql, "assignment_class_id")
	assert.NotContains(t, sql, "assignment_session_no")
}

func TestListFilterAllCriteria(t *testing.T) {
	classID := uuid.New()
	studentID := uuid.New()
	sql, vars := buildSQL(t, ListFilter{
		ClassroomID: &classID,
		StudentID:   &studentID,
		SessionNo:   3,
	})

	assert.Contains(t, sql, "assignment_class_id = ?")
	assert.Contains(t, sql, "assignment_student_id = ?")
	assert.Contains(t, sql, "assignment_session_no = ?")
	assert.Contains(t, vars, classID)
	assert.Contains(t, vars, studentID)
	assert.Contains(t, vars, 3)
}

func TestListFilterEmptyMeansNoWhere(t *testing.T) {
	sql, vars := buildSQL(t, ListFilter{})

	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, vars)
	assert.Contains(t, sql, "assignment_created_at DESC")
}
