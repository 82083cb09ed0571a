package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	asgModel "kelasku_backend/internals/features/assignments/assignments/model"
)

// ListFilter: filter listing tugas. Semua filter diterapkan sebagai WHERE
// di database — row siswa lain tidak pernah ikut terambil lalu dibuang.
type ListFilter struct {
	ClassroomID *uuid.UUID
	StudentID   *uuid.UUID
	SessionNo   int // 0 = tanpa filter sesi
}

// Apply membangun query terfilter di atas tx.
func (f ListFilter) Apply(tx *gorm.DB) *gorm.DB {
	q := tx.Model(&asgModel.AssignmentModel{})
	if f.ClassroomID != nil {
		q = q.Where("assignment_class_id = ?", *f.ClassroomID)
	}
	if f.StudentID != nil {
		q = q.Where("assignment_student_id = ?", *f.StudentID)
	}
	if f.SessionNo > 0 {
		q = q.Where("assignment_session_no = ?", f.SessionNo)
	}
	return q.Order("assignment_created_at DESC")
}
