package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/bookshelf/internal/actions"
	"github.com/mmcdole/bookshelf/internal/config"
	"github.com/mmcdole/bookshelf/internal/console"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/library"
	"github.com/mmcdole/bookshelf/internal/log"
	"github.com/mmcdole/bookshelf/internal/search"
	"github.com/mmcdole/bookshelf/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("bookshelf %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, logFile, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting bookshelf", "version", Version, "mode", cfg.UI.Mode)

	lib := library.New(logger)

	var suggester actions.Suggester
	if cfg.Search.Suggestions {
		suggester = search.NewSuggester(logger)
	}
	actions.Register(lib, actions.Default(suggester)...)

	if cfg.UI.Mode == config.ModeTUI {
		return runTUI(lib, logger)
	}
	return runConsole(lib, cfg, logger)
}

func runConsole(lib *library.Library, cfg *config.Config, logger *slog.Logger) error {
	clearer := console.NewClearer(os.Stdout, cfg.UI.ClearScreen)
	menu := console.NewMenu(lib, os.Stdin, os.Stdout, clearer, logger)

	err := menu.Run(context.Background())
	if errors.Is(err, domain.ErrInputClosed) {
		// Piped input ran out; nothing left to answer the menu with
		logger.Info("input closed, shutting down")
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("shutting down")
	return nil
}

func runTUI(lib *library.Library, logger *slog.Logger) error {
	p := tea.NewProgram(tui.NewModel(lib, logger))

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
