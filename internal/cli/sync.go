package cli

import (
	"context"
	"errors"
	"fmt"

	"termsync/internal/review"
)

func (c *Cli) RunSync(ctx context.Context, yes bool) error {
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

	if !plan.Baselined {
		c.io.Println("No baseline given, removals may undo edits made on the server")
	}

	actions := plan.Actions
	if yes {
		c.io.Println(review.Render(actions))
	} else {
		picked, err := c.selectActions(actions)
		if errors.Is(err, review.ErrAborted) {
			c.io.Println("Aborted, nothing changed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("review failed: %w", err)
		}
		if len(picked) == 0 {
			c.io.Println("Nothing selected, nothing changed")
			return nil
		}
		actions = picked
	}

	result, applyErr := c.syncService.Apply(ctx, token, actions)
	if result != nil {
		c.io.Printf("Applied %d actions: %d added, %d updated, %d removed\n",
			result.Applied(), result.Created, result.Updated, result.Deleted)
	}
	if applyErr != nil {
		return applyErr
	}

	return nil
}
