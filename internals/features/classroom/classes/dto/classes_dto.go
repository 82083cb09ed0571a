package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	classModel "kelasku_backend/internals/features/classroom/classes/model"
	"kelasku_backend/internals/features/classroom/rules"
)

/*
PatchField adalah util 3-state untuk PATCH:
- field tidak dikirim  -> Present=false
- field dikirim nilai  -> Present=true,  Value != nil
- field dikirim null   -> Present=true,  Value == nil
*/
type PatchField[T any] struct {
	Present bool `json:"-"`
	Value   *T   `json:"-"`
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p *PatchField[T]) IsNull() bool       { return p != nil && p.Present && p.Value == nil }
func (p *PatchField[T]) ShouldUpdate() bool { return p != nil && p.Present }

const dateLayout = "2006-01-02"

/* ========================= CREATE ========================= */

type CreateClassRequest struct {
	ClassName     string  `json:"class_name" validate:"required,min=1,max=120"`
	ClassCode     *string `json:"class_code,omitempty" validate:"omitempty,max=40"`
	ClassCategory *string `json:"class_category,omitempty" validate:"omitempty,max=60"`

	ClassStartDate     *string `json:"class_start_date,omitempty"` // "YYYY-MM-DD"
	ClassEndDate       *string `json:"class_end_date,omitempty"`
	ClassTotalSessions int     `json:"class_total_sessions" validate:"min=0"`

	ClassRuleType      string   `json:"class_rule_type" validate:"omitempty,oneof=always_open time_range weekly_days weekly_days_with_time"`
	ClassRuleDays      []string `json:"class_rule_days,omitempty"`
	ClassRuleStartTime *string  `json:"class_rule_start_time,omitempty"`
	ClassRuleEndTime   *string  `json:"class_rule_end_time,omitempty"`

	ClassDeliveryMethods []string `json:"class_delivery_methods,omitempty"`
	ClassIsActive        *bool    `json:"class_is_active,omitempty"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	if r.ClassRuleType == "" {
		r.ClassRuleType = classModel.RuleAlwaysOpen
	}
	for i := range r.ClassRuleDays {
		r.ClassRuleDays[i] = strings.TrimSpace(r.ClassRuleDays[i])
	}
}

// Validate memeriksa konsistensi antar-field aturan pengumpulan.
func (r *CreateClassRequest) Validate() error {
	switch r.ClassRuleType {
	case classModel.RuleTimeRange, classModel.RuleWeeklyDaysWithTime:
		if r.ClassRuleStartTime == nil || r.ClassRuleEndTime == nil {
			return errors.New("aturan dengan window jam membutuhkan class_rule_start_time dan class_rule_end_time")
		}
		if !validHHMM(*r.ClassRuleStartTime) || !validHHMM(*r.ClassRuleEndTime) {
			return errors.New("format jam harus HH:MM")
		}
	}
	switch r.ClassRuleType {
	case classModel.RuleWeeklyDays, classModel.RuleWeeklyDaysWithTime:
		if len(r.ClassRuleDays) == 0 {
			return errors.New("aturan mingguan membutuhkan class_rule_days")
		}
	}
	if r.ClassStartDate != nil && !validDate(*r.ClassStartDate) {
		return errors.New("class_start_date harus YYYY-MM-DD")
	}
	if r.ClassEndDate != nil && !validDate(*r.ClassEndDate) {
		return errors.New("class_end_date harus YYYY-MM-DD")
	}
	return nil
}

func (r *CreateClassRequest) ToModel() (*classModel.ClassModel, error) {
	m := &classModel.ClassModel{
		ClassName:          r.ClassName,
		ClassCode:          r.ClassCode,
		ClassCategory:      r.ClassCategory,
		ClassTotalSessions: r.ClassTotalSessions,
		ClassRuleType:      r.ClassRuleType,
		ClassRuleStartTime: r.ClassRuleStartTime,
		ClassRuleEndTime:   r.ClassRuleEndTime,
		ClassIsActive:      true,
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
	if r.ClassStartDate != nil {
		t, err := time.Parse(dateLayout, *r.ClassStartDate)
		if err != nil {
			return nil, err
		}
		m.ClassStartDate = &t
	}
	if r.ClassEndDate != nil {
		t, err := time.Parse(dateLayout, *r.ClassEndDate)
		if err != nil {
			return nil, err
		}
		m.ClassEndDate = &t
	}
	if len(r.ClassRuleDays) > 0 {
		b, err := json.Marshal(r.ClassRuleDays)
		if err != nil {
			return nil, err
		}
		m.ClassRuleDays = datatypes.JSON(b)
	}
	if len(r.ClassDeliveryMethods) > 0 {
		b, err := json.Marshal(r.ClassDeliveryMethods)
		if err != nil {
			return nil, err
		}
		m.ClassDeliveryMethods = datatypes.JSON(b)
	}
	return m, nil
}

/* ========================= PATCH ========================= */

// Field bertipe VALUE (bukan pointer): decoder men-set pointer field nil
// untuk JSON null tanpa memanggil UnmarshalJSON, sehingga null dan
// field-tidak-dikirim jadi tidak terbedakan. Dengan field addressable,
// UnmarshalJSON selalu terpanggil, termasuk untuk literal null.
type PatchClassRequest struct {
	ClassName     PatchField[string] `json:"class_name"`
	ClassCode     PatchField[string] `json:"class_code"`
	ClassCategory PatchField[string] `json:"class_category"`

	ClassStartDate     PatchField[string] `json:"class_start_date"`
	ClassEndDate       PatchField[string] `json:"class_end_date"`
	ClassTotalSessions PatchField[int]    `json:"class_total_sessions"`

	ClassRuleType      PatchField[string]   `json:"class_rule_type"`
	ClassRuleDays      PatchField[[]string] `json:"class_rule_days"`
	ClassRuleStartTime PatchField[string]   `json:"class_rule_start_time"`
	ClassRuleEndTime   PatchField[string]   `json:"class_rule_end_time"`

	ClassDeliveryMethods PatchField[[]string] `json:"class_delivery_methods"`
	ClassImageURL        PatchField[string]   `json:"class_image_url"`
	ClassIsActive        PatchField[bool]     `json:"class_is_active"`
}

func (p *PatchClassRequest) Validate() error {
	if p.ClassName.ShouldUpdate() {
		if p.ClassName.IsNull() || strings.TrimSpace(*p.ClassName.Value) == "" {
			return errors.New("class_name tidak boleh kosong")
		}
	}
	if p.ClassRuleType.ShouldUpdate() {
		if p.ClassRuleType.IsNull() {
			return errors.New("class_rule_type tidak boleh null")
		}
		switch *p.ClassRuleType.Value {
		case classModel.RuleAlwaysOpen, classModel.RuleTimeRange,
			classModel.RuleWeeklyDays, classModel.RuleWeeklyDaysWithTime:
		default:
			return errors.New("class_rule_type tidak dikenal")
		}
	}
	for _, f := range []*PatchField[string]{&p.ClassRuleStartTime, &p.ClassRuleEndTime} {
		if f.ShouldUpdate() && !f.IsNull() && !validHHMM(*f.Value) {
			return errors.New("format jam harus HH:MM")
		}
	}
	for _, f := range []*PatchField[string]{&p.ClassStartDate, &p.ClassEndDate} {
		if f.ShouldUpdate() && !f.IsNull() && !validDate(*f.Value) {
			return errors.New("format tanggal harus YYYY-MM-DD")
		}
	}
	if p.ClassTotalSessions.ShouldUpdate() {
		if p.ClassTotalSessions.IsNull() || *p.ClassTotalSessions.Value < 0 {
			return errors.New("class_total_sessions tidak valid")
		}
	}
	return nil
}

// ToUpdates membangun map kolom→nilai untuk gorm Updates.
func (p *PatchClassRequest) ToUpdates() (map[string]any, error) {
	upd := map[string]any{}

	putStr := func(key string, f *PatchField[string]) {
		if f.ShouldUpdate() {
			if f.IsNull() {
				upd[key] = nil
			} else {
				upd[key] = *f.Value
			}
		}
	}
	putStr("class_name", &p.ClassName)
	putStr("class_code", &p.ClassCode)
	putStr("class_category", &p.ClassCategory)
	putStr("class_rule_type", &p.ClassRuleType)
	putStr("class_rule_start_time", &p.ClassRuleStartTime)
	putStr("class_rule_end_time", &p.ClassRuleEndTime)
	putStr("class_image_url", &p.ClassImageURL)

	for key, f := range map[string]*PatchField[string]{
		"class_start_date": &p.ClassStartDate,
		"class_end_date":   &p.ClassEndDate,
	} {
		if f.ShouldUpdate() {
			if f.IsNull() {
				upd[key] = nil
			} else {
				t, err := time.Parse(dateLayout, *f.Value)
				if err != nil {
					return nil, err
				}
				upd[key] = t
			}
		}
	}

	if p.ClassTotalSessions.ShouldUpdate() {
		upd["class_total_sessions"] = *p.ClassTotalSessions.Value
	}
	if p.ClassIsActive.ShouldUpdate() {
		if p.ClassIsActive.IsNull() {
			return nil, errors.New("class_is_active tidak boleh null")
		}
		upd["class_is_active"] = *p.ClassIsActive.Value
	}

	for key, f := range map[string]*PatchField[[]string]{
		"class_rule_days":        &p.ClassRuleDays,
		"class_delivery_methods": &p.ClassDeliveryMethods,
	} {
		if f.ShouldUpdate() {
			if f.IsNull() {
				upd[key] = nil
			} else {
				b, err := json.Marshal(*f.Value)
				if err != nil {
					return nil, err
				}
				upd[key] = datatypes.JSON(b)
			}
		}
	}

	if len(upd) > 0 {
		upd["class_updated_at"] = time.Now()
	}
	return upd, nil
}

/* ========================= RESPONSE ========================= */

type ClassResponse struct {
	ClassID       uuid.UUID `json:"class_id"`
	ClassName     string    `json:"class_name"`
	ClassCode     *string   `json:"class_code,omitempty"`
	ClassCategory *string   `json:"class_category,omitempty"`

	ClassStartDate     *string `json:"class_start_date,omitempty"`
	ClassEndDate       *string `json:"class_end_date,omitempty"`
	ClassTotalSessions int     `json:"class_total_sessions"`

	ClassRule rules.Rule `json:"class_rule"`

	ClassDeliveryMethods []string `json:"class_delivery_methods,omitempty"`
	ClassImageURL        *string  `json:"class_image_url,omitempty"`
	ClassIsActive        bool     `json:"class_is_active"`

	ClassCreatedAt time.Time `json:"class_created_at"`
	ClassUpdatedAt time.Time `json:"class_updated_at"`
}

func FromModel(m *classModel.ClassModel) ClassResponse {
	resp := ClassResponse{
		ClassID:            m.ClassID,
		ClassName:          m.ClassName,
		ClassCode:          m.ClassCode,
		ClassCategory:      m.ClassCategory,
		ClassTotalSessions: m.ClassTotalSessions,
		ClassRule:          RuleFromModel(m),
		ClassImageURL:      m.ClassImageURL,
		ClassIsActive:      m.ClassIsActive,
		ClassCreatedAt:     m.ClassCreatedAt,
		ClassUpdatedAt:     m.ClassUpdatedAt,
	}
	if m.ClassStartDate != nil {
		s := m.ClassStartDate.Format(dateLayout)
		resp.ClassStartDate = &s
	}
	if m.ClassEndDate != nil {
		s := m.ClassEndDate.Format(dateLayout)
		resp.ClassEndDate = &s
	}
	if len(m.ClassDeliveryMethods) > 0 {
		_ = json.Unmarshal(m.ClassDeliveryMethods, &resp.ClassDeliveryMethods)
	}
	return resp
}

func FromModels(list []classModel.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

// RuleFromModel membangun deskriptor aturan dari kolom-kolom kelas.
func RuleFromModel(m *classModel.ClassModel) rules.Rule {
	r := rules.Rule{Type: m.ClassRuleType}
	if len(m.ClassRuleDays) > 0 {
		_ = json.Unmarshal(m.ClassRuleDays, &r.Days)
	}
	if m.ClassRuleStartTime != nil {
		r.StartTime = *m.ClassRuleStartTime
	}
	if m.ClassRuleEndTime != nil {
		r.EndTime = *m.ClassRuleEndTime
	}
	return r
}

/* ========================= util ========================= */

func validHHMM(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
