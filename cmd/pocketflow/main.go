package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/pocketflow/internal/cli"
	"github.com/alexanderramin/pocketflow/internal/config"
	"github.com/alexanderramin/pocketflow/internal/db"
	"github.com/alexanderramin/pocketflow/internal/repository"
	"github.com/alexanderramin/pocketflow/internal/service"
	"github.com/alexanderramin/pocketflow/internal/timer"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	root := cli.NewRootCmd(app)
	loader := config.NewLoader()
	if err := loader.BindFlags(root.PersistentFlags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	var (
		database *sql.DB
		logFile  *os.File
	)
	defer func() {
		if database != nil {
			database.Close()
		}
		if logFile != nil {
			logFile.Close()
		}
	}()

	// Services are wired after flag parsing so --db and friends apply.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loader.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		logFile, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		observer := service.NewLogUseCaseObserver(logFile, cfg.Level())

		sessions := repository.NewSQLiteSessionRepo(database)
		clock := timer.RealClock{}
		app.Focus = service.NewFocusService(cmd.Context(), sessions, timer.New(timer.DefaultDurations()), clock, observer)
		app.Today = service.NewTodayService(sessions, clock, observer)
		return nil
	}

	return root.ExecuteContext(ctx)
}
