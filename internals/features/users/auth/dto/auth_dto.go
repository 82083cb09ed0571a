package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	authModel "kelasku_backend/internals/features/users/auth/model"
	profileModel "kelasku_backend/internals/features/users/profile/model"
)

/* ========================= REGISTER ========================= */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	// role hanya boleh student/vod; admin dibuat lewat seeder
	Role string `json:"role" validate:"omitempty,oneof=student vod"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	if r.Role == "" {
		r.Role = profileModel.RoleStudent
	}
}

/* ========================= LOGIN ========================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

/* ========================= RESPONSE ========================= */

type AuthUserResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresAt   time.Time        `json:"expires_at"`
	User        AuthUserResponse `json:"user"`
}

func FromUser(u *authModel.UserModel, role string) AuthUserResponse {
	return AuthUserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     role,
	}
}
