package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/quranreader/internal/config"
	"github.com/mrlokans/quranreader/internal/transfer"
)

type ImportCommand struct {
	DatabasePath string
	File         string

	out io.Writer
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{out: os.Stdout}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the reader database")
	fs.StringVar(&cmd.File, "file", "", "Exported progress document to import (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import an exported progress document into local storage.\n")
		fmt.Fprintf(os.Stderr, "Records are stored under the document's userId.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.File == "" {
		fs.Usage()
		return fmt.Errorf("file is required")
	}

	return nil
}

func (cmd *ImportCommand) Run() error {
	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.File, err)
	}

	local, closeDB, err := openLocalStore(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer closeDB()

	result := transfer.NewExporter(local).Import(string(data))
	if !result.Success {
		return fmt.Errorf("import failed: %s", result.Error)
	}

	fmt.Fprintf(cmd.out, "Imported %d records\n", result.Imported)
	return nil
}
