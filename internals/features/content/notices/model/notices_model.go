package model

import (
	"time"

	"github.com/google/uuid"
)

// NoticeModel merepresentasikan tabel `class_notices`.
type NoticeModel struct {
	NoticeID       uuid.UUID `json:"notice_id"        gorm:"column:notice_id;type:uuid;default:gen_random_uuid();primaryKey"`
	NoticeClassID  uuid.UUID `json:"notice_class_id"  gorm:"column:notice_class_id;type:uuid;not null"`
	NoticeTitle    string    `json:"notice_title"     gorm:"column:notice_title;type:varchar(200);not null"`
	NoticeBody     string    `json:"notice_body"      gorm:"column:notice_body;type:text;not null"`
	NoticeIsPinned bool      `json:"notice_is_pinned" gorm:"column:notice_is_pinned;not null;default:false"`

	NoticeCreatedAt time.Time `json:"notice_created_at" gorm:"column:notice_created_at;type:timestamptz;not null;default:now()"`
	NoticeUpdatedAt time.Time `json:"notice_updated_at" gorm:"column:notice_updated_at;type:timestamptz;not null;default:now()"`
}

func (NoticeModel) TableName() string {
	return "class_notices"
}
