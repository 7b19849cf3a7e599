package sync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"termsync/internal/models"
	"termsync/internal/storage"
)

// ApplyResult counts the remote mutations one Apply call performed.
type ApplyResult struct {
	Created int
	Updated int
	Deleted int
}

// Applied returns the total number of successfully executed actions.
func (r *ApplyResult) Applied() int {
	return r.Created + r.Updated + r.Deleted
}

// Failure records one action that could not be executed.
type Failure struct {
	Action models.Action
	Err    error
}

// ApplyError aggregates per-action failures. A failing action never stops
// the remaining ones; the caller gets the full picture at the end.
type ApplyError struct {
	Failures []Failure
}

func (e *ApplyError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to apply %d actions:", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n    %s %s: %v", f.Action.Kind, f.Action.Key, f.Err)
	}
	return b.String()
}

// Apply executes the selected actions against the remote store, one by one,
// and records the run in the metadata store. It returns the counts of what
// succeeded plus an ApplyError when anything failed.
func (s *Service) Apply(ctx context.Context, token string, actions []models.Action) (*ApplyResult, error) {
	result := &ApplyResult{}
	var failures []Failure

	for _, action := range actions {
		if err := s.applyOne(ctx, token, action); err != nil {
			s.logger.Warn("failed to apply action",
				"kind", action.Kind.String(),
				"key", action.Key,
				"error", err)
			failures = append(failures, Failure{Action: action, Err: err})
			continue
		}

		switch action.Kind {
		case models.ActionAdd:
			result.Created++
		case models.ActionUpdate:
			result.Updated++
		case models.ActionRemove:
			result.Deleted++
		}
	}

	s.logger.Info("applied sync plan",
		"created", result.Created,
		"updated", result.Updated,
		"deleted", result.Deleted,
		"failed", len(failures))

	if err := s.metadata.SaveLastSync(ctx, &storage.LastSync{
		ProjectID: s.opts.ProjectID,
		Locale:    s.opts.Locale,
		SyncedAt:  time.Now().UTC(),
		Applied:   result.Applied(),
	}); err != nil {
		// bookkeeping only, the remote mutations already happened
		s.logger.Warn("failed to record sync run", "error", err)
	}

	if len(failures) > 0 {
		return result, &ApplyError{Failures: failures}
	}
	return result, nil
}

// applyOne issues the remote calls for a single action.
func (s *Service) applyOne(ctx context.Context, token string, action models.Action) error {
	switch action.Kind {
	case models.ActionAdd:
		term, err := s.apiClient.CreateTerm(ctx, token, s.opts.ProjectID, action.Key)
		if err != nil {
			return fmt.Errorf("failed to create term: %w", err)
		}
		if err := s.apiClient.EditTranslation(ctx, token, s.opts.ProjectID, s.opts.Locale, term.ID, action.Text); err != nil {
			return fmt.Errorf("failed to set translation for new term: %w", err)
		}
		return nil

	case models.ActionUpdate:
		if err := s.apiClient.EditTranslation(ctx, token, s.opts.ProjectID, s.opts.Locale, action.RemoteID, action.Text); err != nil {
			return fmt.Errorf("failed to update translation: %w", err)
		}
		return nil

	case models.ActionRemove:
		if err := s.apiClient.DeleteTerm(ctx, token, s.opts.ProjectID, action.RemoteID); err != nil {
			return fmt.Errorf("failed to delete term: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown action kind %v", action.Kind)
	}
}
