package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	fbModel "kelasku_backend/internals/features/assignments/feedback/model"
)

type CreateFeedbackRequest struct {
	AssignmentID uuid.UUID `json:"assignment_id" validate:"required"`
	Content      string    `json:"content" validate:"required,min=1"`
}

func (r *CreateFeedbackRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
}

func (r *CreateFeedbackRequest) ToModel(authorID uuid.UUID) *fbModel.FeedbackModel {
	return &fbModel.FeedbackModel{
		FeedbackAssignmentID: r.AssignmentID,
		FeedbackContent:      r.Content,
		FeedbackAuthorID:     authorID,
	}
}

type FeedbackResponse struct {
	FeedbackID           uuid.UUID `json:"feedback_id"`
	FeedbackAssignmentID uuid.UUID `json:"feedback_assignment_id"`
	FeedbackContent      string    `json:"feedback_content"`
	FeedbackAuthorID     uuid.UUID `json:"feedback_author_id"`
	FeedbackCreatedAt    time.Time `json:"feedback_created_at"`
}

func FromModel(m *fbModel.FeedbackModel) FeedbackResponse {
	return FeedbackResponse{
		FeedbackID:           m.FeedbackID,
		FeedbackAssignmentID: m.FeedbackAssignmentID,
		FeedbackContent:      m.FeedbackContent,
		FeedbackAuthorID:     m.FeedbackAuthorID,
		FeedbackCreatedAt:    m.FeedbackCreatedAt,
	}
}

func FromModels(list []fbModel.FeedbackModel) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
