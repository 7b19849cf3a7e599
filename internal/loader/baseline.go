package loader

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"termsync/internal/models"
)

// Baseline reads the translation file as it existed at the given git
// revision and returns it as a baseline snapshot. The file's history is
// looked up in the repository containing the file, so the caller can run
// termsync from anywhere.
func Baseline(ctx context.Context, rev, path string) (*models.Baseline, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve translation file path: %w", err)
	}

	// "./name" makes git resolve the path relative to the -C directory
	// instead of the repository root.
	spec := rev + ":./" + filepath.Base(abs)
	cmd := exec.CommandContext(ctx, "git", "-C", filepath.Dir(abs), "show", spec)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("git show %s failed: %s", spec, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("failed to run git: %w", err)
	}

	terms, err := parseTranslations(out)
	if err != nil {
		return nil, fmt.Errorf("failed to parse baseline %s: %w", spec, err)
	}
	return &models.Baseline{Terms: terms}, nil
}
