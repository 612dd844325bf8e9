// Package stats derives reading statistics from progress records.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/pagination"
)

// StreakMilestones are the streak lengths worth celebrating, in days.
var StreakMilestones = []int{7, 30, 100, 365}

// ProgressPercentage is currentPage/totalPages as a rounded percentage.
// A chapter with no pages is 0% read.
func ProgressPercentage(currentPage, totalPages int) int {
	if totalPages <= 0 {
		return 0
	}
	return int(math.Round(float64(currentPage) / float64(totalPages) * 100))
}

// ReadingStreak counts consecutive days of reading ending today.
//
// Records are walked newest first against an expected day that starts at the
// calendar day of now. Each record read on the expected day extends the
// streak and moves the expected day back by one. The first record on any
// other day ends the walk, so a second record on an already counted day ends
// it too. Days are compared in now's location.
func ReadingStreak(records []entities.ProgressRecord, now time.Time) int {
	if len(records) == 0 {
		return 0
	}

	sorted := make([]entities.ProgressRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LastRead.After(sorted[j].LastRead)
	})

	loc := now.Location()
	expected := startOfDay(now, loc)
	streak := 0
	for _, record := range sorted {
		if !startOfDay(record.LastRead, loc).Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// TotalVersesRead estimates verses read from page positions, assuming every
// page before and including the current one is full. It overcounts on a
// partial last page.
func TotalVersesRead(records []entities.ProgressRecord) int {
	total := 0
	for _, record := range records {
		total += min(record.CurrentPage*pagination.VersesPerPage, record.TotalPages*pagination.VersesPerPage)
	}
	return total
}

// TotalSurahsRead counts distinct chapters with at least one record.
func TotalSurahsRead(records []entities.ProgressRecord) int {
	chapters := make(map[int]struct{}, len(records))
	for _, record := range records {
		chapters[record.ChapterNumber] = struct{}{}
	}
	return len(chapters)
}

// LastActivity is the latest LastRead across records, or nil for none.
func LastActivity(records []entities.ProgressRecord) *time.Time {
	var latest *time.Time
	for i := range records {
		if latest == nil || records[i].LastRead.After(*latest) {
			t := records[i].LastRead
			latest = &t
		}
	}
	return latest
}

// Aggregate computes the full statistics of a user from their records.
func Aggregate(userID string, records []entities.ProgressRecord, now time.Time) entities.StatsRecord {
	return entities.StatsRecord{
		UserID:          userID,
		TotalSurahsRead: TotalSurahsRead(records),
		TotalVersesRead: TotalVersesRead(records),
		ReadingStreak:   ReadingStreak(records, now),
		LastActivity:    LastActivity(records),
		UpdatedAt:       now,
	}
}

// UpdateRequest turns aggregated statistics into a full update for the
// remote store.
func UpdateRequest(s entities.StatsRecord) entities.UpdateStatsRequest {
	surahs, verses, streak := s.TotalSurahsRead, s.TotalVersesRead, s.ReadingStreak
	return entities.UpdateStatsRequest{
		UserID:          s.UserID,
		TotalSurahsRead: &surahs,
		TotalVersesRead: &verses,
		ReadingStreak:   &streak,
		LastActivity:    s.LastActivity,
	}
}

// NextMilestone returns the smallest milestone above streak.
func NextMilestone(streak int) (int, bool) {
	for _, m := range StreakMilestones {
		if m > streak {
			return m, true
		}
	}
	return 0, false
}

// CompletionPercentage is the share of all verses of the text covered by
// TotalVersesRead, capped at 100.
func CompletionPercentage(totalVersesRead int) int {
	return min(ProgressPercentage(totalVersesRead, entities.TotalVerses), 100)
}
