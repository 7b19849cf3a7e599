package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"termsync/internal/api"
	"termsync/internal/auth"
	"termsync/internal/cli"
	"termsync/internal/config"
	"termsync/internal/iocli"
	"termsync/internal/storage/boltdb"
	"termsync/internal/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// global flags
	showVersion := flag.Bool("version", false, "Show version information")
	envFile := flag.String("env-file", "", "Load configuration from this .env file")
	dbPath := flag.String("db", "", "Path to local state database")

	flag.Parse()

	stdio := iocli.NewStdio()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	command := args[0]

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.BaseURL)
	authService := auth.NewService(apiClient, boltStorage, logger)

	// per-command flags
	syncFlags := flag.NewFlagSet("sync", flag.ExitOnError)
	yes := syncFlags.Bool("yes", false, "Apply without interactive review")
	syncBaseline := syncFlags.String("baseline", "", "Git revision of the last synchronized file state")

	diffFlags := flag.NewFlagSet("diff", flag.ExitOnError)
	diffBaseline := diffFlags.String("baseline", "", "Git revision of the last synchronized file state")

	runCommand := func(baselineOverride string, run func(c *cli.Cli) error) {
		baseline := cfg.BaselineRev
		if baselineOverride != "" {
			baseline = baselineOverride
		}
		syncService := sync.NewService(apiClient, boltStorage, logger, sync.Options{
			ProjectID:       cfg.ProjectID,
			Locale:          cfg.Locale,
			TranslationFile: cfg.TranslationFile,
			BaselineRev:     baseline,
		})
		c := cli.New(cfg, authService, syncService, boltStorage, stdio)
		if err := run(c); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	switch command {
	case "login":
		runCommand("", func(c *cli.Cli) error { return c.RunLogin(ctx) })
	case "logout":
		runCommand("", func(c *cli.Cli) error { return c.RunLogout(ctx) })
	case "status":
		runCommand("", func(c *cli.Cli) error { return c.RunStatus(ctx) })
	case "diff":
		if err := diffFlags.Parse(args[1:]); err != nil {
			os.Exit(1)
		}
		runCommand(*diffBaseline, func(c *cli.Cli) error { return c.RunDiff(ctx) })
	case "sync":
		if err := syncFlags.Parse(args[1:]); err != nil {
			os.Exit(1)
		}
		runCommand(*syncBaseline, func(c *cli.Cli) error { return c.RunSync(ctx, *yes) })
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage(stdio)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("termsync\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
