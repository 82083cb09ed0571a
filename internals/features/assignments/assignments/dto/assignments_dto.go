package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	asgModel "kelasku_backend/internals/features/assignments/assignments/model"
	fbModel "kelasku_backend/internals/features/assignments/feedback/model"
	profileModel "kelasku_backend/internals/features/users/profile/model"
)

/* ========================= CREATE ========================= */

// CreateAssignmentRequest: satu submit per request.
// TEPAT SATU dari {image_base64, link_url, content} harus ada.
type CreateAssignmentRequest struct {
	ClassroomID uuid.UUID  `json:"classroom_id" validate:"required"`
	SessionNo   int        `json:"session_no" validate:"required,min=1"`
	StudentID   *uuid.UUID `json:"student_id,omitempty"` // hanya dipakai admin submit atas nama siswa

	ImageBase64 *string `json:"image_base64,omitempty"`
	LinkURL     *string `json:"link_url,omitempty" validate:"omitempty,url"`
	Content     *string `json:"content,omitempty"`
}

func (r *CreateAssignmentRequest) Normalize() {
	if r.LinkURL != nil {
		v := strings.TrimSpace(*r.LinkURL)
		if v == "" {
			r.LinkURL = nil
		} else {
			r.LinkURL = &v
		}
	}
	if r.Content != nil {
		v := strings.TrimSpace(*r.Content)
		if v == "" {
			r.Content = nil
		} else {
			r.Content = &v
		}
	}
	if r.ImageBase64 != nil && strings.TrimSpace(*r.ImageBase64) == "" {
		r.ImageBase64 = nil
	}
}

// Validate menolak request TANPA efek samping apa pun:
// belum ada upload, belum ada insert.
func (r *CreateAssignmentRequest) Validate() error {
	if r.ClassroomID == uuid.Nil {
		return errors.New("classroom_id wajib diisi")
	}
	if r.SessionNo < 1 {
		return errors.New("session_no wajib diisi")
	}
	n := 0
	if r.ImageBase64 != nil {
		n++
	}
	if r.LinkURL != nil {
		n++
	}
	if r.Content != nil {
		n++
	}
	if n == 0 {
		return errors.New("isi tugas wajib: salah satu dari image_base64, link_url, atau content")
	}
	if n > 1 {
		return errors.New("isi tugas hanya boleh satu dari image_base64, link_url, atau content")
	}
	return nil
}

func (r *CreateAssignmentRequest) ToModel(studentID uuid.UUID, imageURL *string) *asgModel.AssignmentModel {
	return &asgModel.AssignmentModel{
		AssignmentClassID:   r.ClassroomID,
		AssignmentStudentID: studentID,
		AssignmentSessionNo: r.SessionNo,
		AssignmentImageURL:  imageURL,
		AssignmentLinkURL:   r.LinkURL,
		AssignmentContent:   r.Content,
	}
}

/* ========================= RESPONSE ========================= */

type FeedbackResponse struct {
	FeedbackID       uuid.UUID `json:"feedback_id"`
	FeedbackContent  string    `json:"feedback_content"`
	FeedbackAuthorID uuid.UUID `json:"feedback_author_id"`
	CreatedAt        time.Time `json:"feedback_created_at"`
}

type AssignmentProfile struct {
	ProfileID   uuid.UUID `json:"profile_id"`
	ProfileName string    `json:"profile_name"`
	ProfileRole string    `json:"profile_role"`
}

// AssignmentResponse: row tugas + profil siswa + daftar feedback
// (hasil join manual di memory, bukan JOIN SQL).
type AssignmentResponse struct {
	AssignmentID        uuid.UUID `json:"assignment_id"`
	AssignmentClassID   uuid.UUID `json:"assignment_class_id"`
	AssignmentStudentID uuid.UUID `json:"assignment_student_id"`
	AssignmentSessionNo int       `json:"assignment_session_no"`

	AssignmentImageURL *string `json:"assignment_image_url,omitempty"`
	AssignmentLinkURL  *string `json:"assignment_link_url,omitempty"`
	AssignmentContent  *string `json:"assignment_content,omitempty"`

	Profile             *AssignmentProfile `json:"profile,omitempty"`
	AssignmentFeedbacks []FeedbackResponse `json:"assignment_feedbacks"`

	AssignmentCreatedAt time.Time `json:"assignment_created_at"`
}

func FromModel(m *asgModel.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:        m.AssignmentID,
		AssignmentClassID:   m.AssignmentClassID,
		AssignmentStudentID: m.AssignmentStudentID,
		AssignmentSessionNo: m.AssignmentSessionNo,
		AssignmentImageURL:  m.AssignmentImageURL,
		AssignmentLinkURL:   m.AssignmentLinkURL,
		AssignmentContent:   m.AssignmentContent,
		AssignmentFeedbacks: []FeedbackResponse{},
		AssignmentCreatedAt: m.AssignmentCreatedAt,
	}
}

func FeedbackFromModel(m *fbModel.FeedbackModel) FeedbackResponse {
	return FeedbackResponse{
		FeedbackID:       m.FeedbackID,
		FeedbackContent:  m.FeedbackContent,
		FeedbackAuthorID: m.FeedbackAuthorID,
		CreatedAt:        m.FeedbackCreatedAt,
	}
}

func ProfileFromModel(m *profileModel.ProfileModel) AssignmentProfile {
	return AssignmentProfile{
		ProfileID:   m.ProfileID,
		ProfileName: m.ProfileName,
		ProfileRole: m.ProfileRole,
	}
}
