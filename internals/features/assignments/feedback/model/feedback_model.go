package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel merepresentasikan tabel `assignment_feedbacks`.
// Boleh ada banyak feedback per tugas.
type FeedbackModel struct {
	FeedbackID           uuid.UUID `json:"feedback_id"            gorm:"column:feedback_id;type:uuid;default:gen_random_uuid();primaryKey"`
	FeedbackAssignmentID uuid.UUID `json:"feedback_assignment_id" gorm:"column:feedback_assignment_id;type:uuid;not null"`
	FeedbackContent      string    `json:"feedback_content"       gorm:"column:feedback_content;type:text;not null"`
	FeedbackAuthorID     uuid.UUID `json:"feedback_author_id"     gorm:"column:feedback_author_id;type:uuid;not null"`

	FeedbackCreatedAt time.Time `json:"feedback_created_at" gorm:"column:feedback_created_at;type:timestamptz;not null;default:now()"`
}

func (FeedbackModel) TableName() string {
	return "assignment_feedbacks"
}
