package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"termsync/internal/auth"
	"termsync/internal/storage"
)

func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Printf("Server:           %s\n", c.cfg.BaseURL)
	c.io.Printf("Project:          %s\n", c.cfg.ProjectID)
	c.io.Printf("Locale:           %s\n", c.cfg.Locale)
	c.io.Printf("Translation file: %s\n", c.cfg.TranslationFile)
	if c.cfg.BaselineRev != "" {
		c.io.Printf("Baseline:         %s\n", c.cfg.BaselineRev)
	} else {
		c.io.Println("Baseline:         (none, removals applied as planned)")
	}

	session, err := c.authService.Session(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Session:          not logged in")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		until := time.Unix(session.ExpiresAt, 0)
		if time.Now().After(until) {
			c.io.Printf("Session:          %s, expired %s\n", session.Username, until.Format(time.RFC3339))
		} else {
			c.io.Printf("Session:          %s, valid until %s\n", session.Username, until.Format(time.RFC3339))
		}
	}

	last, err := c.metadata.GetLastSync(ctx)
	switch {
	case errors.Is(err, storage.ErrMetadataNotFound):
		c.io.Println("Last sync:        never")
	case err != nil:
		return fmt.Errorf("failed to read last sync: %w", err)
	default:
		c.io.Printf("Last sync:        %s, %d actions applied (project %s, locale %s)\n",
			last.SyncedAt.Format(time.RFC3339), last.Applied, last.ProjectID, last.Locale)
	}

	return nil
}
