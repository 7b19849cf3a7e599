package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) RunLogin(ctx context.Context) error {
	password := c.cfg.Password
	if password == "" {
		input, err := c.io.ReadPassword(fmt.Sprintf("Password for %s: ", c.cfg.Username))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = input
	}

	data, err := c.authService.Login(ctx, c.cfg.Username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	until := time.Unix(data.ExpiresAt, 0).Format(time.RFC3339)
	c.io.Printf("Logged in as %s, session valid until %s\n", data.Username, until)

	return nil
}

func (c *Cli) RunLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("Logged out")

	return nil
}
