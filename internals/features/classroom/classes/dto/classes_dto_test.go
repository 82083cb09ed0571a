package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	classModel "kelasku_backend/internals/features/classroom/classes/model"
)

func TestPatchFieldThreeStates(t *testing.T) {
	var req PatchClassRequest

	// field tidak dikirim sama sekali
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.False(t, req.ClassCode.ShouldUpdate())

	// field dikirim null -> clear
	req = PatchClassRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"class_code": null}`), &req))
	assert.True(t, req.ClassCode.ShouldUpdate())
	assert.True(t, req.ClassCode.IsNull())

	// field dikirim nilai
	req = PatchClassRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"class_code": "GO-101"}`), &req))
	assert.True(t, req.ClassCode.ShouldUpdate())
	assert.False(t, req.ClassCode.IsNull())
	assert.Equal(t, "GO-101", *req.ClassCode.Value)
}

func TestPatchToUpdatesMapsNullAndValue(t *testing.T) {
	var req PatchClassRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"class_name": "Kelas Tahsin",
		"class_category": null,
		"class_total_sessions": 12,
		"class_rule_days": ["Mon","Wed"]
	}`), &req))
	require.NoError(t, req.Validate())

	upd, err := req.ToUpdates()
	require.NoError(t, err)

	assert.Equal(t, "Kelas Tahsin", upd["class_name"])
	val, present := upd["class_category"]
	assert.True(t, present)
	assert.Nil(t, val)
	assert.Equal(t, 12, upd["class_total_sessions"])
	assert.Contains(t, upd, "class_rule_days")
	assert.Contains(t, upd, "class_updated_at")
	assert.NotContains(t, upd, "class_code")
}

func TestPatchValidateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty name", `{"class_name": "  "}`},
		{"null rule type", `{"class_rule_type": null}`},
		{"unknown rule type", `{"class_rule_type": "monthly"}`},
		{"bad time format", `{"class_rule_start_time": "9am"}`},
		{"bad date format", `{"class_start_date": "01-02-2026"}`},
		{"negative sessions", `{"class_total_sessions": -1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req PatchClassRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateValidateCrossFieldRules(t *testing.T) {
	base := func() CreateClassRequest {
		return CreateClassRequest{ClassName: "Kelas", ClassTotalSessions: 8}
	}

	// time_range tanpa jam -> tolak
	req := base()
	req.ClassRuleType = classModel.RuleTimeRange
	req.Normalize()
	assert.Error(t, req.Validate())

	// weekly_days tanpa hari -> tolak
	req = base()
	req.ClassRuleType = classModel.RuleWeeklyDays
	req.Normalize()
	assert.Error(t, req.Validate())

	// lengkap -> lolos
	start, end := "09:00", "18:00"
	req = base()
	req.ClassRuleType = classModel.RuleWeeklyDaysWithTime
	req.ClassRuleDays = []string{"Mon", "Wed"}
	req.ClassRuleStartTime = &start
	req.ClassRuleEndTime = &end
	req.Normalize()
	assert.NoError(t, req.Validate())

	// default rule type = always_open
	req = base()
	req.Normalize()
	assert.Equal(t, classModel.RuleAlwaysOpen, req.ClassRuleType)
	assert.NoError(t, req.Validate())
}

func TestRuleFromModel(t *testing.T) {
	start, end := "10:00", "12:00"
	m := classModel.ClassModel{
		ClassRuleType:      classModel.RuleWeeklyDaysWithTime,
		ClassRuleDays:      datatypes.JSON(`["Mon","Wed"]`),
		ClassRuleStartTime: &start,
		ClassRuleEndTime:   &end,
	}
	r := RuleFromModel(&m)
	assert.Equal(t, classModel.RuleWeeklyDaysWithTime, r.Type)
	assert.Equal(t, []string{"Mon", "Wed"}, r.Days)
	assert.Equal(t, "10:00", r.StartTime)
	assert.Equal(t, "12:00", r.EndTime)
}
