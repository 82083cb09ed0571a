package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	asgModel "kelasku_backend/internals/features/assignments/assignments/model"
	fbModel "kelasku_backend/internals/features/assignments/feedback/model"
	profileModel "kelasku_backend/internals/features/users/profile/model"
)

func TestEnrichAttachesFeedbackAndProfile(t *testing.T) {
	student := uuid.New()
	other := uuid.New()
	a1 := asgModel.AssignmentModel{AssignmentID: uuid.New(), AssignmentStudentID: student, AssignmentSessionNo: 1}
	a2 := asgModel.AssignmentModel{AssignmentID: uuid.New(), AssignmentStudentID: other, AssignmentSessionNo: 2}

	feedbacks := []fbModel.FeedbackModel{
		{FeedbackID: uuid.New(), FeedbackAssignmentID: a1.AssignmentID, FeedbackContent: "bagus"},
		{FeedbackID: uuid.New(), FeedbackAssignmentID: a1.AssignmentID, FeedbackContent: "lanjutkan"},
	}
	profiles := []profileModel.ProfileModel{
		{ProfileID: student, ProfileName: "Siti", ProfileRole: profileModel.RoleStudent},
	}

	got := Enrich([]asgModel.AssignmentModel{a1, a2}, feedbacks, profiles)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].Profile)
	assert.Equal(t, "Siti", got[0].Profile.ProfileName)
	require.Len(t, got[0].AssignmentFeedbacks, 2)
	assert.Equal(t, "bagus", got[0].AssignmentFeedbacks[0].FeedbackContent)

	// profil tidak ditemukan -> nil; feedback kosong -> slice kosong, bukan nil
	assert.Nil(t, got[1].Profile)
	require.NotNil(t, got[1].AssignmentFeedbacks)
	assert.Empty(t, got[1].AssignmentFeedbacks)
}

func TestEnrichEmptyInput(t *testing.T) {
	got := Enrich(nil, nil, nil)
	assert.Empty(t, got)
}

func TestStudentIDsDeduplicated(t *testing.T) {
	s1 := uuid.New()
	s2 := uuid.New()
	assignments := []asgModel.AssignmentModel{
		{AssignmentID: uuid.New(), AssignmentStudentID: s1},
		{AssignmentID: uuid.New(), AssignmentStudentID: s2},
		{AssignmentID: uuid.New(), AssignmentStudentID: s1},
	}
	assert.Equal(t, []uuid.UUID{s1, s2}, StudentIDs(assignments))
	assert.Len(t, AssignmentIDs(assignments), 3)
}
