package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tembo-pages/tembo/internal/cli"
	"github.com/tembo-pages/tembo/internal/config"
	"github.com/tembo-pages/tembo/internal/errors"
	"github.com/tembo-pages/tembo/internal/logging"
	"github.com/tembo-pages/tembo/internal/service"
	"github.com/tembo-pages/tembo/internal/ui"
)

var version = "1.0.0"

func main() {
	var showVersion, showVersionShort, verbose bool
	flag.BoolVar(&showVersion, "version", false, "print the version")
	flag.BoolVar(&showVersionShort, "v", false, "print the version")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	if showVersion || showVersionShort {
		fmt.Printf("Tembo v%s 🐘\n", version)
		return
	}

	logging.Setup(verbose)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[TEMBO] %s 🐘\n", errors.GetAppError(err).Error())
		os.Exit(1)
	}
	if !verbose {
		logging.SetLevel(cfg.LogLevel)
	}

	svc := service.New(cfg)

	// No arguments launches the interactive mode; any argument selects the
	// headless CLI.
	args := flag.Args()
	if len(args) == 0 {
		program := tea.NewProgram(ui.NewModel(svc), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running interactive mode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	os.Exit(cli.New(svc).Execute(args))
}
