package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	profileModel "kelasku_backend/internals/features/users/profile/model"
)

type ProfileResponse struct {
	ProfileID    uuid.UUID `json:"profile_id"`
	ProfileName  string    `json:"profile_name"`
	ProfileEmail string    `json:"profile_email"`
	ProfileRole  string    `json:"profile_role"`
	CreatedAt    time.Time `json:"profile_created_at"`
}

func FromModel(m *profileModel.ProfileModel) ProfileResponse {
	return ProfileResponse{
		ProfileID:    m.ProfileID,
		ProfileName:  m.ProfileName,
		ProfileEmail: m.ProfileEmail,
		ProfileRole:  m.ProfileRole,
		CreatedAt:    m.ProfileCreatedAt,
	}
}

func FromModels(list []profileModel.ProfileModel) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

type UpdateProfileRequest struct {
	ProfileName string `json:"profile_name" validate:"required,min=1,max=80"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.ProfileName = strings.TrimSpace(r.ProfileName)
}
