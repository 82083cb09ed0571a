package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kelasku_backend/internals/features/content/materials/model"
)

// CreateMaterialRequest dikirim sebagai multipart form.
// type=file  -> file diambil dari field "material_file", URL diisi server.
// type=link|video -> material_url wajib diisi.
type CreateMaterialRequest struct {
	MaterialClassID   uuid.UUID `form:"material_class_id" validate:"required"`
	MaterialTitle     string    `form:"material_title"    validate:"required,min=1,max=200"`
	MaterialType      string    `form:"material_type"     validate:"required,oneof=file link video"`
	MaterialURL       string    `form:"material_url"`
	MaterialSessionNo *int      `form:"material_session_no" validate:"omitempty,min=1"`
}

func (r *CreateMaterialRequest) Normalize() {
	r.MaterialTitle = strings.TrimSpace(r.MaterialTitle)
	r.MaterialType = strings.ToLower(strings.TrimSpace(r.MaterialType))
	r.MaterialURL = strings.TrimSpace(r.MaterialURL)
}

func (r *CreateMaterialRequest) ToModel(url string) *model.MaterialModel {
	return &model.MaterialModel{
		MaterialClassID:   r.MaterialClassID,
		MaterialTitle:     r.MaterialTitle,
		MaterialType:      r.MaterialType,
		MaterialURL:       url,
		MaterialSessionNo: r.MaterialSessionNo,
	}
}

type UpdateMaterialRequest struct {
	MaterialTitle     *string `json:"material_title"      validate:"omitempty,min=1,max=200"`
	MaterialURL       *string `json:"material_url"        validate:"omitempty,min=1"`
	MaterialSessionNo *int    `json:"material_session_no" validate:"omitempty,min=1"`
}

func (r *UpdateMaterialRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.MaterialTitle != nil {
		updates["material_title"] = strings.TrimSpace(*r.MaterialTitle)
	}
	if r.MaterialURL != nil {
		updates["material_url"] = strings.TrimSpace(*r.MaterialURL)
	}
	if r.MaterialSessionNo != nil {
		updates["material_session_no"] = *r.MaterialSessionNo
	}
	if len(updates) > 0 {
		updates["material_updated_at"] = time.Now()
	}
	return updates
}

type MaterialResponse struct {
	MaterialID        uuid.UUID `json:"material_id"`
	MaterialClassID   uuid.UUID `json:"material_class_id"`
	MaterialTitle     string    `json:"material_title"`
	MaterialType      string    `json:"material_type"`
	MaterialURL       string    `json:"material_url"`
	MaterialSessionNo *int      `json:"material_session_no,omitempty"`
	MaterialCreatedAt time.Time `json:"material_created_at"`
	MaterialUpdatedAt time.Time `json:"material_updated_at"`
}

func FromModel(m *model.MaterialModel) MaterialResponse {
	return MaterialResponse{
		MaterialID:        m.MaterialID,
		MaterialClassID:   m.MaterialClassID,
		MaterialTitle:     m.MaterialTitle,
		MaterialType:      m.MaterialType,
		MaterialURL:       m.MaterialURL,
		MaterialSessionNo: m.MaterialSessionNo,
		MaterialCreatedAt: m.MaterialCreatedAt,
		MaterialUpdatedAt: m.MaterialUpdatedAt,
	}
}

func FromModels(list []model.MaterialModel) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
