package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/microspark/microspark/internal/cli"
	"github.com/microspark/microspark/internal/db"
	"github.com/microspark/microspark/internal/repository"
	"github.com/microspark/microspark/internal/service"
	"github.com/microspark/microspark/internal/timer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.microspark/microspark.db
	dbPath := os.Getenv("MICROSPARK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".microspark", "microspark.db")
	}
	// Open database (OpenDB creates the parent directory)
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	activityRepo := repository.NewSQLiteActivityRepo(database)
	badgeRepo := repository.NewSQLiteBadgeRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	progressSvc := service.NewProgressService(activityRepo, uow)

	app := &cli.App{
		Progress:   progressSvc,
		Stats:      service.NewStatsService(activityRepo, badgeRepo, profileRepo),
		Activities: service.NewActivityService(activityRepo),
		Profiles:   service.NewProfileService(profileRepo),
		// The CLI drives ticks itself: tea.Tick in the session UI, an
		// IntervalTicker in headless mode.
		Runner: service.NewSessionRunner(progressSvc, timer.NopTicker{}),
	}

	// Detect interactive terminal for the session UI and the setup form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
