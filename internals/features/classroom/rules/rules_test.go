package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// helper: Senin 2026-01-05 adalah Monday
func at(day time.Weekday, hhmm string) time.Time {
	base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) // Monday
	for base.Weekday() != day {
		base = base.AddDate(0, 0, 1)
	}
	t, _ := time.Parse("15:04", hhmm)
	return time.Date(base.Year(), base.Month(), base.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func TestCanSubmitAt_AlwaysOpen(t *testing.T) {
	r := Rule{Type: TypeAlwaysOpen}
	assert.True(t, CanSubmitAt(r, at(time.Sunday, "03:00")))
}

func TestCanSubmitAt_TimeRangeBoundaries(t *testing.T) {
	r := Rule{Type: TypeTimeRange, StartTime: "09:00", EndTime: "18:00"}

	tests := []struct {
		name string
		hhmm string
		want bool
	}{
		{"tepat jam buka", "09:00", true},
		{"tepat jam tutup", "18:00", true},
		{"satu menit sebelum buka", "08:59", false},
		{"satu menit setelah tutup", "18:01", false},
		{"tengah window", "12:30", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanSubmitAt(r, at(time.Monday, tt.hhmm)))
		})
	}
}

func TestCanSubmitAt_WeeklyDays(t *testing.T) {
	r := Rule{Type: TypeWeeklyDays, Days: []string{"Mon", "Wed"}}

	assert.True(t, CanSubmitAt(r, at(time.Monday, "23:59")))
	assert.True(t, CanSubmitAt(r, at(time.Wednesday, "00:00")))
	assert.False(t, CanSubmitAt(r, at(time.Tuesday, "11:00")))

	// nama hari lengkap juga diterima
	full := Rule{Type: TypeWeeklyDays, Days: []string{"monday"}}
	assert.True(t, CanSubmitAt(full, at(time.Monday, "10:00")))
}

func TestCanSubmitAt_WeeklyDaysWithTime(t *testing.T) {
	r := Rule{
		Type:      TypeWeeklyDaysWithTime,
		Days:      []string{"Mon", "Wed"},
		StartTime: "10:00",
		EndTime:   "12:00",
	}

	assert.True(t, CanSubmitAt(r, at(time.Monday, "11:00")))
	assert.False(t, CanSubmitAt(r, at(time.Tuesday, "11:00")))
	assert.False(t, CanSubmitAt(r, at(time.Monday, "09:59")))
}

func TestCanSubmitAt_UnknownType(t *testing.T) {
	assert.False(t, CanSubmitAt(Rule{Type: "lottery"}, at(time.Monday, "11:00")))
	assert.False(t, CanSubmitAt(Rule{}, at(time.Monday, "11:00")))
}

// Window yang melewati tengah malam tidak didukung: selalu false.
func TestCanSubmitAt_MidnightCrossingWindow(t *testing.T) {
	r := Rule{Type: TypeTimeRange, StartTime: "22:00", EndTime: "02:00"}
	assert.False(t, CanSubmitAt(r, at(time.Monday, "23:00")))
	assert.False(t, CanSubmitAt(r, at(time.Monday, "01:00")))
}

func TestCanSubmitAt_TimeRangeMissingBounds(t *testing.T) {
	r := Rule{Type: TypeTimeRange}
	assert.False(t, CanSubmitAt(r, at(time.Monday, "11:00")))
}
