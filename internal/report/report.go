// Package report renders a reader's progress as an XLSX workbook.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/stats"
)

const (
	ProgressSheet = "Progress"
	SummarySheet  = "Summary"
	ContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var progressHeader = []any{"Surah", "Name", "Edition", "Page", "Total Pages", "Progress %", "Last Read"}

// Input is everything a report shows.
type Input struct {
	UserID  string
	Records []entities.ProgressRecord
	// ChapterNames maps chapter numbers to display names. Missing names are
	// left blank.
	ChapterNames map[int]string
	Now          time.Time
}

// Filename is the suggested download name for a report made at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("reading-report-%s.xlsx", now.Format("2006-01-02"))
}

// Write renders the workbook to w.
func Write(w io.Writer, in Input) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ProgressSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeProgress(f, in); err != nil {
		return err
	}
	if err := writeSummary(f, in); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeProgress(f *excelize.File, in Input) error {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := f.SetSheetRow(ProgressSheet, "A1", &progressHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(ProgressSheet, "A1", "G1", header); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	records := make([]entities.ProgressRecord, len(in.Records))
	copy(records, in.Records)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].ChapterNumber != records[j].ChapterNumber {
			return records[i].ChapterNumber < records[j].ChapterNumber
		}
		return records[i].EditionID < records[j].EditionID
	})

	for i, r := range records {
		row := []any{
			r.ChapterNumber,
			in.ChapterNames[r.ChapterNumber],
			r.EditionID.Label(),
			r.CurrentPage,
			r.TotalPages,
			stats.ProgressPercentage(r.CurrentPage, r.TotalPages),
			r.LastRead.Format(time.RFC3339),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ProgressSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(ProgressSheet, "B", "B", 24); err != nil {
		return err
	}
	return f.SetColWidth(ProgressSheet, "G", "G", 26)
}

func writeSummary(f *excelize.File, in Input) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	summary := stats.Aggregate(in.UserID, in.Records, in.Now)

	lastActivity := "never"
	if summary.LastActivity != nil {
		lastActivity = summary.LastActivity.Format(time.RFC3339)
	}
	nextMilestone := "-"
	if m, ok := stats.NextMilestone(summary.ReadingStreak); ok {
		nextMilestone = fmt.Sprintf("%d days", m)
	}

	rows := [][]any{
		{"Reader", in.UserID},
		{"Surahs read", summary.TotalSurahsRead},
		{"Verses read (estimate)", summary.TotalVersesRead},
		{"Completion %", stats.CompletionPercentage(summary.TotalVersesRead)},
		{"Reading streak (days)", summary.ReadingStreak},
		{"Next milestone", nextMilestone},
		{"Last activity", lastActivity},
		{"Generated at", in.Now.Format(time.RFC3339)},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(SummarySheet, "A", "A", 24)
}
