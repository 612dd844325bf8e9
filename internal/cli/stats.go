package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrlokans/quranreader/internal/config"
	"github.com/mrlokans/quranreader/internal/progressapi"
	"github.com/mrlokans/quranreader/internal/report"
	"github.com/mrlokans/quranreader/internal/stats"
)

// StatsCommand prints a reader's statistics from local storage and can push
// them to the progress backend or write them to a spreadsheet.
type StatsCommand struct {
	DatabasePath string
	UserID       string
	Push         bool
	APIURL       string
	Timeout      time.Duration
	ReportPath   string

	out io.Writer
	now func() time.Time
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{out: os.Stdout, now: time.Now}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the reader database")
	fs.StringVar(&cmd.UserID, "user", "", "Reader ID (required)")
	fs.BoolVar(&cmd.Push, "push", false, "Push the statistics to the progress backend")
	fs.StringVar(&cmd.APIURL, "api", progressapi.DefaultBaseURL, "Progress backend URL used with -push")
	fs.DurationVar(&cmd.Timeout, "timeout", progressapi.DefaultTimeout, "Backend request timeout")
	fs.StringVar(&cmd.ReportPath, "report", "", "Also write an XLSX reading report to this path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show reading statistics computed from locally stored progress.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s stats -user 1f0c...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s stats -user 1f0c... -push -api http://localhost:3001/api\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s stats -user 1f0c... -report progress.xlsx\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.UserID == "" {
		fs.Usage()
		return fmt.Errorf("user is required")
	}

	return nil
}

func (cmd *StatsCommand) Run() error {
	local, closeDB, err := openLocalStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer closeDB()

	now := cmd.now()
	records := local.All(cmd.UserID)
	summary := stats.Aggregate(cmd.UserID, records, now)

	fmt.Fprintf(cmd.out, "=== Reading statistics for %s ===\n", cmd.UserID)
	fmt.Fprintf(cmd.out, "Surahs read:    %d\n", summary.TotalSurahsRead)
	fmt.Fprintf(cmd.out, "Verses read:    %d (%d%% of the Quran)\n",
		summary.TotalVersesRead, stats.CompletionPercentage(summary.TotalVersesRead))
	fmt.Fprintf(cmd.out, "Reading streak: %d days\n", summary.ReadingStreak)
	if next, ok := stats.NextMilestone(summary.ReadingStreak); ok {
		fmt.Fprintf(cmd.out, "Next milestone: %d days\n", next)
	}
	if summary.LastActivity != nil {
		fmt.Fprintf(cmd.out, "Last activity:  %s\n", summary.LastActivity.Format(time.RFC3339))
	}

	if cmd.ReportPath != "" {
		f, err := os.Create(cmd.ReportPath)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		err = report.Write(f, report.Input{UserID: cmd.UserID, Records: records, Now: now})
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.out, "Report written to %s\n", cmd.ReportPath)
	}

	if cmd.Push {
		pusher := stats.NewPusher(local, progressapi.NewClient(cmd.APIURL, cmd.Timeout))
		pusher.SetClock(cmd.now)

		ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
		defer cancel()
		if _, err := pusher.Push(ctx, cmd.UserID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.out, "Statistics pushed to %s\n", cmd.APIURL)
	}

	return nil
}
