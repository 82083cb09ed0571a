package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tipe aturan pengumpulan tugas (kolom class_rule_type)
const (
	RuleAlwaysOpen         = "always_open"
	RuleTimeRange          = "time_range"
	RuleWeeklyDays         = "weekly_days"
	RuleWeeklyDaysWithTime = "weekly_days_with_time"
)

// ClassModel merepresentasikan tabel `classes`.
// Dihapus secara FISIK oleh admin (tanpa soft-delete).
type ClassModel struct {
	ClassID       uuid.UUID `json:"class_id"       gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassName     string    `json:"class_name"     gorm:"column:class_name;type:varchar(120);not null"`
	ClassCode     *string   `json:"class_code,omitempty"     gorm:"column:class_code;type:varchar(40)"`
	ClassCategory *string   `json:"class_category,omitempty" gorm:"column:class_category;type:varchar(60)"`

	// Jadwal kelas
	ClassStartDate     *time.Time `json:"class_start_date,omitempty" gorm:"column:class_start_date;type:date"`
	ClassEndDate       *time.Time `json:"class_end_date,omitempty"   gorm:"column:class_end_date;type:date"`
	ClassTotalSessions int        `json:"class_total_sessions"       gorm:"column:class_total_sessions;not null;default:0"`

	// Konfigurasi aturan pengumpulan tugas
	ClassRuleType      string         `json:"class_rule_type"                 gorm:"column:class_rule_type;type:varchar(30);not null;default:'always_open'"`
	ClassRuleDays      datatypes.JSON `json:"class_rule_days,omitempty"       gorm:"column:class_rule_days;type:jsonb"`
	ClassRuleStartTime *string        `json:"class_rule_start_time,omitempty" gorm:"column:class_rule_start_time;type:varchar(5)"`
	ClassRuleEndTime   *string        `json:"class_rule_end_time,omitempty"   gorm:"column:class_rule_end_time;type:varchar(5)"`

	ClassDeliveryMethods datatypes.JSON `json:"class_delivery_methods,omitempty" gorm:"column:class_delivery_methods;type:jsonb"`
	ClassImageURL        *string        `json:"class_image_url,omitempty"        gorm:"column:class_image_url;type:text"`
	ClassIsActive        bool           `json:"class_is_active"                  gorm:"column:class_is_active;not null;default:true"`

	ClassCreatedAt time.Time `json:"class_created_at" gorm:"column:class_created_at;type:timestamptz;not null;default:now()"`
	ClassUpdatedAt time.Time `json:"class_updated_at" gorm:"column:class_updated_at;type:timestamptz;not null;default:now()"`
}

func (ClassModel) TableName() string {
	return "classes"
}
