package dto

import (
	"strings"

	"github.com/google/uuid"
)

type UpsertSettingRequest struct {
	SettingKey     string `json:"setting_key" validate:"required,min=1,max=60"`
	SettingEnabled bool   `json:"setting_enabled"`
}

func (r *UpsertSettingRequest) Normalize() {
	r.SettingKey = strings.ToLower(strings.TrimSpace(r.SettingKey))
}

type UpsertFlagRequest struct {
	FlagClassID uuid.UUID `json:"flag_class_id" validate:"required"`
	FlagKey     string    `json:"flag_key"      validate:"required,min=1,max=60"`
	FlagEnabled bool      `json:"flag_enabled"`
}

func (r *UpsertFlagRequest) Normalize() {
	r.FlagKey = strings.ToLower(strings.TrimSpace(r.FlagKey))
}
