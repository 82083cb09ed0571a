package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentModel merepresentasikan tabel `assignments`.
// Satu row per submit; TANPA unique constraint (class, student, session):
// duplikat dibiarkan menumpuk, dedup terjadi saat baca (distinct session).
type AssignmentModel struct {
	AssignmentID        uuid.UUID `json:"assignment_id"         gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AssignmentClassID   uuid.UUID `json:"assignment_class_id"   gorm:"column:assignment_class_id;type:uuid;not null"`
	AssignmentStudentID uuid.UUID `json:"assignment_student_id" gorm:"column:assignment_student_id;type:uuid;not null"`
	AssignmentSessionNo int       `json:"assignment_session_no" gorm:"column:assignment_session_no;not null"`

	AssignmentImageURL *string `json:"assignment_image_url,omitempty" gorm:"column:assignment_image_url;type:text"`
	AssignmentLinkURL  *string `json:"assignment_link_url,omitempty"  gorm:"column:assignment_link_url;type:text"`
	AssignmentContent  *string `json:"assignment_content,omitempty"   gorm:"column:assignment_content;type:text"`

	AssignmentCreatedAt time.Time `json:"assignment_created_at" gorm:"column:assignment_created_at;type:timestamptz;not null;default:now()"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}
