// Package service berisi logika murni listing tugas:
// join manual row tugas dengan feedback & profil di memory.
package service

import (
	"github.com/google/uuid"

	"kelasku_backend/internals/features/assignments/assignments/dto"
	asgModel "kelasku_backend/internals/features/assignments/assignments/model"
	fbModel "kelasku_backend/internals/features/assignments/feedback/model"
	profileModel "kelasku_backend/internals/features/users/profile/model"
)

// Enrich menggabungkan tiga result set menjadi response listing:
// feedback dikelompokkan per assignment_id, profil di-lookup per student_id.
// Murni function-of-inputs; controller yang melakukan query.
func Enrich(
	assignments []asgModel.AssignmentModel,
	feedbacks []fbModel.FeedbackModel,
	profiles []profileModel.ProfileModel,
) []dto.AssignmentResponse {
	fbByAssignment := make(map[uuid.UUID][]dto.FeedbackResponse, len(assignments))
	for i := range feedbacks {
		fb := &feedbacks[i]
		fbByAssignment[fb.FeedbackAssignmentID] = append(
			fbByAssignment[fb.FeedbackAssignmentID], dto.FeedbackFromModel(fb))
	}

	profileByID := make(map[uuid.UUID]dto.AssignmentProfile, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		profileByID[p.ProfileID] = dto.ProfileFromModel(p)
	}

	out := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		resp := dto.FromModel(&assignments[i])
		if fbs, ok := fbByAssignment[resp.AssignmentID]; ok {
			resp.AssignmentFeedbacks = fbs
		}
		if p, ok := profileByID[resp.AssignmentStudentID]; ok {
			prof := p
			resp.Profile = &prof
		}
		out = append(out, resp)
	}
	return out
}

// AssignmentIDs mengumpulkan id untuk query feedback sekunder.
func AssignmentIDs(assignments []asgModel.AssignmentModel) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(assignments))
	for i := range assignments {
		ids = append(ids, assignments[i].AssignmentID)
	}
	return ids
}

// StudentIDs mengumpulkan student_id unik untuk query profil sekunder.
func StudentIDs(assignments []asgModel.AssignmentModel) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(assignments))
	ids := make([]uuid.UUID, 0, len(assignments))
	for i := range assignments {
		id := assignments[i].AssignmentStudentID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
