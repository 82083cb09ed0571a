package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaterialTypeFile  = "file"
	MaterialTypeLink  = "link"
	MaterialTypeVideo = "video"
)

// MaterialModel merepresentasikan tabel `class_materials`.
type MaterialModel struct {
	MaterialID        uuid.UUID `json:"material_id"         gorm:"column:material_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MaterialClassID   uuid.UUID `json:"material_class_id"   gorm:"column:material_class_id;type:uuid;not null"`
	MaterialTitle     string    `json:"material_title"      gorm:"column:material_title;type:varchar(200);not null"`
	MaterialType      string    `json:"material_type"       gorm:"column:material_type;type:varchar(20);not null;default:'file'"`
	MaterialURL       string    `json:"material_url"        gorm:"column:material_url;type:text;not null"`
	MaterialSessionNo *int      `json:"material_session_no,omitempty" gorm:"column:material_session_no"`

	MaterialCreatedAt time.Time `json:"material_created_at" gorm:"column:material_created_at;type:timestamptz;not null;default:now()"`
	MaterialUpdatedAt time.Time `json:"material_updated_at" gorm:"column:material_updated_at;type:timestamptz;not null;default:now()"`
}

func (MaterialModel) TableName() string {
	return "class_materials"
}

func ValidMaterialType(t string) bool {
	return t == MaterialTypeFile || t == MaterialTypeLink || t == MaterialTypeVideo
}
