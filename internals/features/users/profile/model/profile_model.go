package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleVOD     = "vod"
	RoleAdmin   = "admin"
)

// ProfileModel merepresentasikan tabel `profiles`.
// profile_id SAMA dengan users.id (share id dengan penyedia auth).
// Role diset saat registrasi; tidak ada alur perpindahan role.
type ProfileModel struct {
	ProfileID    uuid.UUID `json:"profile_id"    gorm:"column:profile_id;type:uuid;primaryKey"`
	ProfileName  string    `json:"profile_name"  gorm:"column:profile_name;type:varchar(80);not null"`
	ProfileEmail string    `json:"profile_email" gorm:"column:profile_email;type:varchar(255);not null"`
	ProfileRole  string    `json:"profile_role"  gorm:"column:profile_role;type:varchar(20);not null;default:'student'"`

	ProfileCreatedAt time.Time `json:"profile_created_at" gorm:"column:profile_created_at;type:timestamptz;not null;default:now()"`
	ProfileUpdatedAt time.Time `json:"profile_updated_at" gorm:"column:profile_updated_at;type:timestamptz;not null;default:now()"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func ValidRole(r string) bool {
	return r == RoleStudent || r == RoleVOD || r == RoleAdmin
}
