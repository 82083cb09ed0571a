package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSettingModel: toggle notifikasi per (user, key).
type NotificationSettingModel struct {
	SettingUserID    uuid.UUID `json:"setting_user_id"    gorm:"column:setting_user_id;type:uuid;primaryKey"`
	SettingKey       string    `json:"setting_key"        gorm:"column:setting_key;type:varchar(60);primaryKey"`
	SettingEnabled   bool      `json:"setting_enabled"    gorm:"column:setting_enabled;not null;default:true"`
	SettingUpdatedAt time.Time `json:"setting_updated_at" gorm:"column:setting_updated_at;type:timestamptz;not null;default:now()"`
}

func (NotificationSettingModel) TableName() string {
	return "notification_settings"
}

// ClassNotificationFlagModel: flag notifikasi per (kelas, key), dikelola admin.
type ClassNotificationFlagModel struct {
	FlagClassID   uuid.UUID `json:"flag_class_id"   gorm:"column:flag_class_id;type:uuid;primaryKey"`
	FlagKey       string    `json:"flag_key"        gorm:"column:flag_key;type:varchar(60);primaryKey"`
	FlagEnabled   bool      `json:"flag_enabled"    gorm:"column:flag_enabled;not null;default:true"`
	FlagUpdatedAt time.Time `json:"flag_updated_at" gorm:"column:flag_updated_at;type:timestamptz;not null;default:now()"`
}

func (ClassNotificationFlagModel) TableName() string {
	return "class_notification_flags"
}
