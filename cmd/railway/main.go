package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"railway/internal/auth"
	"railway/internal/cli"
	"railway/internal/reservation"
	"railway/internal/shared/config"
	"railway/internal/shared/storage"
	"railway/pkg/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	flagSet := pflag.NewFlagSet("railway", pflag.ContinueOnError)
	dataDir := flagSet.String("data-dir", "", "directory for state files (overrides DATA_DIR)")
	envFile := flagSet.String("env-file", "", "path to .env file (default: ./.env)")
	showVersion := flagSet.Bool("version", false, "print version and exit")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *showVersion {
		fmt.Printf("railway %s (%s, built %s)\n", Version, GitCommit, BuildTime)
		return
	}

	// Load environment variables
	var envErr error
	if *envFile != "" {
		envErr = godotenv.Load(*envFile)
	} else {
		envErr = godotenv.Load()
	}

	// The logger reads LOG_LEVEL and APP_MODE, so build it after the env
	// is loaded.
	appLogger := logger.New()
	logger.SetDefault(appLogger)

	if envErr != nil {
		appLogger.Info("No .env file found, using system environment variables")
	} else {
		appLogger.Info("Loaded .env file")
	}

	// Flag overrides win over environment.
	if *dataDir != "" {
		os.Setenv("DATA_DIR", *dataDir)
	}

	// Load config
	cfg := config.Load()

	store := storage.NewStore(cfg.Storage, appLogger)

	session, err := auth.NewSession(cfg.Admin.Password, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize admin session", slog.Any("error", err))
		os.Exit(1)
	}

	engine := reservation.NewService(store, session, cfg.Limits, appLogger)

	ctx := context.Background()
	if err := engine.Load(ctx); err != nil {
		appLogger.Error("Failed to load reservation state", slog.Any("error", err))
		os.Exit(1)
	}

	appLogger.Info("Reservation system ready",
		slog.String("data_dir", cfg.Storage.DataDir),
		slog.Int("trains", len(engine.Trains(ctx))),
	)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	shell := cli.NewShell(engine, session, appLogger, os.Stdin, os.Stdout, interactive)
	if err := shell.Run(ctx); err != nil {
		appLogger.Error("Shell exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}
