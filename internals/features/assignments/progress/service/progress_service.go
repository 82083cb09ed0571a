package service

import (
	"sort"

	"github.com/google/uuid"
)

// Submission adalah pasangan (student, session) mentah dari tabel assignments.
// Duplikat sesi boleh muncul; dedup dilakukan di sini.
type Submission struct {
	StudentID uuid.UUID
	SessionNo int
}

// StudentProgress hasil agregasi per-siswa.
type StudentProgress struct {
	StudentID         uuid.UUID `json:"student_id"`
	SubmittedSessions []int     `json:"submitted_sessions"`
	SubmittedCount    int       `json:"submitted_count"`
	MissingSessions   []int     `json:"missing_sessions"`
	Complete          bool      `json:"complete"`
}

// Aggregate menghitung progres tiap siswa di roster terhadap daftar sesi
// yang diharapkan. Fungsi murni: deterministik dari tiga inputnya.
//   - submitted = irisan distinct sesi yang dikirim dengan expected
//   - missing   = expected \ submitted, urut naik
//   - complete  = count == len(expected) dan expected tidak kosong
func Aggregate(roster []uuid.UUID, submissions []Submission, expected []int) []StudentProgress {
	expectedSet := make(map[int]struct{}, len(expected))
	for _, s := range expected {
		expectedSet[s] = struct{}{}
	}

	// student -> set sesi distinct (hanya yang memang diharapkan)
	byStudent := make(map[uuid.UUID]map[int]struct{}, len(roster))
	for _, sub := range submissions {
		if _, ok := expectedSet[sub.SessionNo]; !ok {
			continue
		}
		set := byStudent[sub.StudentID]
		if set == nil {
			set = make(map[int]struct{})
			byStudent[sub.StudentID] = set
		}
		set[sub.SessionNo] = struct{}{}
	}

	out := make([]StudentProgress, 0, len(roster))
	for _, studentID := range roster {
		set := byStudent[studentID]

		submitted := make([]int, 0, len(set))
		for s := range set {
			submitted = append(submitted, s)
		}
		sort.Ints(submitted)

		missing := make([]int, 0, len(expected))
		for _, s := range expected {
			if _, ok := set[s]; !ok {
				missing = append(missing, s)
			}
		}
		sort.Ints(missing)

		out = append(out, StudentProgress{
			StudentID:         studentID,
			SubmittedSessions: submitted,
			SubmittedCount:    len(submitted),
			MissingSessions:   missing,
			Complete:          len(expected) > 0 && len(submitted) == len(expected),
		})
	}
	return out
}

// ExpectedSessions membangun daftar sesi 1..total (kosong bila total <= 0).
func ExpectedSessions(total int) []int {
	if total <= 0 {
		return []int{}
	}
	out := make([]int, 0, total)
	for i := 1; i <= total; i++ {
		out = append(out, i)
	}
	return out
}
