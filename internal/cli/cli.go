// Package cli implements the termsync commands on top of the auth and sync
// services.
package cli

import (
	"termsync/internal/auth"
	"termsync/internal/config"
	"termsync/internal/iocli"
	"termsync/internal/models"
	"termsync/internal/review"
	"termsync/internal/storage"
	"termsync/internal/sync"
)

type Cli struct {
	cfg         *config.Config
	authService *auth.Service
	syncService *sync.Service
	metadata    storage.MetadataStorage
	io          iocli.IO

	// selectActions runs the interactive review; swapped out in tests
	selectActions func([]models.Action) ([]models.Action, error)
}

func New(cfg *config.Config, authService *auth.Service, syncService *sync.Service, metadata storage.MetadataStorage, io iocli.IO) *Cli {
	return &Cli{
		cfg:           cfg,
		authService:   authService,
		syncService:   syncService,
		metadata:      metadata,
		io:            io,
		selectActions: review.Select,
	}
}

func PrintUsage(io iocli.IO) {
	io.Println("termsync - keep a Traduora project in sync with a local translation file")
	io.Println()
	io.Println("Usage:")
	io.Println("  termsync [OPTIONS] COMMAND")
	io.Println()
	io.Println("Options:")
	io.Println("  --version          Show version information")
	io.Println("  --env-file PATH    Load configuration from this .env file")
	io.Println("  --db PATH          Path to local state database (default: termsync.db)")
	io.Println()
	io.Println("Commands:")
	io.Println("  login              Authenticate and cache the access token")
	io.Println("  logout             Drop the cached access token")
	io.Println("  status             Show configuration, session and last sync run")
	io.Println("  diff               Compute and print the action plan, change nothing")
	io.Println("  sync               Compute the plan, review it, apply it")
	io.Println()
	io.Println("Sync options:")
	io.Println("  --yes              Apply without interactive review")
	io.Println("  --baseline REV     Git revision of the last synchronized file state")
	io.Println()
	io.Println("Configuration (environment or .env):")
	io.Println("  TERMSYNC_BASE_URL          Traduora instance (default: http://localhost:8080)")
	io.Println("  TERMSYNC_USERNAME          Login username")
	io.Println("  TERMSYNC_PASSWORD          Login password (prompted when unset)")
	io.Println("  TERMSYNC_PROJECT_ID        Project UUID")
	io.Println("  TERMSYNC_LOCALE            Locale code (default: en)")
	io.Println("  TERMSYNC_TRANSLATION_FILE  Local JSON translation file")
	io.Println("  TERMSYNC_BASELINE_REV      Default baseline git revision")
	io.Println()
	io.Println("Examples:")
	io.Println("  termsync login")
	io.Println("  termsync diff")
	io.Println("  termsync sync --baseline origin/main")
	io.Println("  termsync sync --yes")
}
