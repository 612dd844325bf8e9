package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/quranreader/internal/cli"
	"github.com/mrlokans/quranreader/internal/config"
	"github.com/mrlokans/quranreader/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is what every CLI subcommand implements.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the reader server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		entrypoint.Run(config.NewConfig(), Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "backend":
		entrypoint.RunBackend(config.NewConfig(), Version)
		return
	case "export":
		cmd = cli.NewExportCommand()
	case "import":
		cmd = cli.NewImportCommand()
	case "stats":
		cmd = cli.NewStatsCommand()
	case "version":
		fmt.Printf("quranreader %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the reader server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  backend   Start the progress and statistics backend\n")
	fmt.Fprintf(os.Stderr, "  export    Export a reader's local progress as JSON\n")
	fmt.Fprintf(os.Stderr, "  import    Import an exported progress document\n")
	fmt.Fprintf(os.Stderr, "  stats     Show, report or push a reader's statistics\n")
	fmt.Fprintf(os.Stderr, "  version   Print the version\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
