package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/quranreader/internal/config"
	"github.com/mrlokans/quranreader/internal/transfer"
)

type ExportCommand struct {
	DatabasePath string
	UserID       string
	Output       string

	out io.Writer
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the reader database")
	fs.StringVar(&cmd.UserID, "user", "", "Reader ID whose progress is exported (required)")
	fs.StringVar(&cmd.Output, "out", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export a reader's locally stored progress as a JSON document.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export -user 1f0c... -out progress.json\n", os.Args[0])
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

func (cmd *ExportCommand) Run() error {
	local, closeDB, err := openLocalStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer closeDB()

	doc, err := transfer.NewExporter(local).Export(cmd.UserID)
	if err != nil {
		return err
	}

	if cmd.Output == "" {
		_, err = fmt.Fprintln(cmd.out, doc)
		return err
	}

	if err := os.WriteFile(cmd.Output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.Output, err)
	}
	fmt.Fprintf(cmd.out, "Exported %d records for %s to %s\n", len(local.All(cmd.UserID)), cmd.UserID, cmd.Output)
	return nil
}
