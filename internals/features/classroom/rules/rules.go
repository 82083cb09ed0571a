// Package rules mengevaluasi aturan pengumpulan tugas sebuah kelas:
// apakah pada saat tertentu siswa boleh submit.
package rules

import (
	"strings"
	"time"
)

const (
	TypeAlwaysOpen         = "always_open"
	TypeTimeRange          = "time_range"
	TypeWeeklyDays         = "weekly_days"
	TypeWeeklyDaysWithTime = "weekly_days_with_time"
)

// Rule adalah deskriptor aturan pengumpulan dari konfigurasi kelas.
type Rule struct {
	Type      string   `json:"type"`
	Days      []string `json:"days,omitempty"`       // mis. ["Mon","Wed"]
	StartTime string   `json:"start_time,omitempty"` // "HH:MM"
	EndTime   string   `json:"end_time,omitempty"`   // "HH:MM"
}

// CanSubmitAt memutuskan apakah submit diperbolehkan pada saat `at`.
//
// Perbandingan jam memakai perbandingan string "HH:MM" apa adanya:
// window yang melewati tengah malam (mis. 22:00–02:00) TIDAK didukung
// dan selalu menghasilkan false. Perilaku ini dipertahankan dari sistem
// lama; lihat DESIGN.md.
func CanSubmitAt(r Rule, at time.Time) bool {
	switch r.Type {
	case TypeAlwaysOpen:
		return true
	case TypeTimeRange:
		return inTimeWindow(r, at)
	case TypeWeeklyDays:
		return onAllowedDay(r, at)
	case TypeWeeklyDaysWithTime:
		return onAllowedDay(r, at) && inTimeWindow(r, at)
	default:
		return false
	}
}

func inTimeWindow(r Rule, at time.Time) bool {
	if r.StartTime == "" || r.EndTime == "" {
		return false
	}
	hhmm := at.Format("15:04")
	return r.StartTime <= hhmm && hhmm <= r.EndTime // inklusif kedua ujung
}

func onAllowedDay(r Rule, at time.Time) bool {
	day := at.Weekday().String() // "Monday", ...
	for _, d := range r.Days {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		// terima nama penuh ("Monday") maupun singkatan 3 huruf ("Mon")
		if strings.EqualFold(d, day) || strings.EqualFold(d, day[:3]) {
			return true
		}
	}
	return false
}
