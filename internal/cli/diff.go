package cli

import (
	"context"
	"fmt"

	"termsync/internal/review"
)

func (c *Cli) RunDiff(ctx context.Context) error {
	token, err := c.authService.Token(ctx)
	if err != nil {
		return err
	}

	plan, err := c.syncService.Plan(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to compute plan: %w", err)
	}

	if len(plan.Actions) == 0 {
		c.io.Println("Local file and remote project are in sync")
		return nil
	}

	c.io.Println(review.Render(plan.Actions))

	added, updated, removed := plan.Counts()
	c.io.Println(review.Summary(added, updated, removed))

	if !plan.Baselined {
		c.io.Println("No baseline given, removals may undo edits made on the server")
	}

	return nil
}
