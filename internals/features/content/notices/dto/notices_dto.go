package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/content/notices/model"
)

type CreateNoticeRequest struct {
	NoticeClassID  uuid.UUID `json:"notice_class_id" validate:"required"`
	NoticeTitle    string    `json:"notice_title"    validate:"required,min=1,max=200"`
	NoticeBody     string    `json:"notice_body"     validate:"required,min=1"`
	NoticeIsPinned bool      `json:"notice_is_pinned"`
}

func (r *CreateNoticeRequest) Normalize() {
	r.NoticeTitle = strings.TrimSpace(r.NoticeTitle)
	r.NoticeBody = strings.TrimSpace(r.NoticeBody)
}

func (r *CreateNoticeRequest) ToModel() *model.NoticeModel {
	return &model.NoticeModel{
		NoticeClassID:  r.NoticeClassID,
		NoticeTitle:    r.NoticeTitle,
		NoticeBody:     r.NoticeBody,
		NoticeIsPinned: r.NoticeIsPinned,
	}
}

type UpdateNoticeRequest struct {
	NoticeTitle    *string `json:"notice_title"     validate:"omitempty,min=1,max=200"`
	NoticeBody     *string `json:"notice_body"      validate:"omitempty,min=1"`
	NoticeIsPinned *bool   `json:"notice_is_pinned"`
}

func (r *UpdateNoticeRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.NoticeTitle != nil {
		updates["notice_title"] = strings.TrimSpace(*r.NoticeTitle)
	}
	if r.NoticeBody != nil {
		updates["notice_body"] = strings.TrimSpace(*r.NoticeBody)
	}
	if r.NoticeIsPinned != nil {
		updates["notice_is_pinned"] = *r.NoticeIsPinned
	}
	if len(updates) > 0 {
		updates["notice_updated_at"] = time.Now()
	}
	return updates
}

type NoticeResponse struct {
	NoticeID        uuid.UUID `json:"notice_id"`
	NoticeClassID   uuid.UUID `json:"notice_class_id"`
	NoticeTitle     string    `json:"notice_title"`
	NoticeBody      string    `json:"notice_body"`
	NoticeIsPinned  bool      `json:"notice_is_pinned"`
	NoticeCreatedAt time.Time `json:"notice_created_at"`
	NoticeUpdatedAt time.Time `json:"notice_updated_at"`
}

func FromModel(m *model.NoticeModel) NoticeResponse {
	return NoticeResponse{
		NoticeID:        m.NoticeID,
		NoticeClassID:   m.NoticeClassID,
		NoticeTitle:     m.NoticeTitle,
		NoticeBody:      m.NoticeBody,
		NoticeIsPinned:  m.NoticeIsPinned,
		NoticeCreatedAt: m.NoticeCreatedAt,
		NoticeUpdatedAt: m.NoticeUpdatedAt,
	}
}

func FromModels(list []model.NoticeModel) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
