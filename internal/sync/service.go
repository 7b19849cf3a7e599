// Package sync wires the snapshot loaders and the merge engine into the
// plan/apply pipeline behind the diff and sync commands.
package sync

import (
	"context"
	"fmt"
	"log/slog"

	"termsync/internal/loader"
	"termsync/internal/merge"
	"termsync/internal/models"
	"termsync/internal/storage"
	pkgapi "termsync/pkg/api"
)

//go:generate moq -out api_mock.go . TermAPI

// TermAPI is the slice of the API client the pipeline depends on.
type TermAPI interface {
	ListTerms(ctx context.Context, token, projectID string) ([]pkgapi.Term, error)
	ListTranslations(ctx context.Context, token, projectID, locale string) ([]pkgapi.Translation, error)
	CreateTerm(ctx context.Context, token, projectID, value string) (*pkgapi.Term, error)
	EditTranslation(ctx context.Context, token, projectID, locale, termID, value string) error
	DeleteTerm(ctx context.Context, token, projectID, termID string) error
}

// Options selects the project, locale and files one Service instance works on.
type Options struct {
	ProjectID       string
	Locale          string
	TranslationFile string

	// BaselineRev is the git revision of the last synchronized file state.
	// Empty skips baseline refinement.
	BaselineRev string
}

// Service computes and applies synchronization plans.
type Service struct {
	apiClient TermAPI
	metadata  storage.MetadataStorage
	logger    *slog.Logger
	opts      Options

	// loader indirection for tests
	loadLocal    func(path string) ([]models.Term, error)
	loadBaseline func(ctx context.Context, rev, path string) (*models.Baseline, error)
}

// NewService creates a new sync service.
func NewService(apiClient TermAPI, metadata storage.MetadataStorage, logger *slog.Logger, opts Options) *Service {
	return &Service{
		apiClient:    apiClient,
		metadata:     metadata,
		logger:       logger,
		opts:         opts,
		loadLocal:    loader.Local,
		loadBaseline: loader.Baseline,
	}
}

// Plan is the ordered action sequence one sync run proposes. Actions are
// independent: the user may deselect any subset before Apply.
type Plan struct {
	Actions []models.Action

	// Baselined reports whether refinement against a baseline snapshot ran.
	// Without it, removals of remotely created terms cannot be told apart
	// from local deletions.
	Baselined bool
}

// Counts returns the number of planned additions, updates and removals.
func (p *Plan) Counts() (added, updated, removed int) {
	for _, a := range p.Actions {
		switch a.Kind {
		case models.ActionAdd:
			added++
		case models.ActionUpdate:
			updated++
		case models.ActionRemove:
			removed++
		}
	}
	return added, updated, removed
}

// Plan loads the three snapshots and runs the merge pipeline. Any loader
// failure aborts the run before the engine sees partial data.
func (s *Service) Plan(ctx context.Context, token string) (*Plan, error) {
	local, err := s.loadLocal(s.opts.TranslationFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load local snapshot: %w", err)
	}
	s.logger.Debug("loaded local snapshot", "terms", len(local))

	remote, err := loader.Remote(ctx, s.apiClient, token, s.opts.ProjectID, s.opts.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load remote snapshot: %w", err)
	}
	s.logger.Debug("loaded remote snapshot", "terms", len(remote))

	var baseline *models.Baseline
	if s.opts.BaselineRev != "" {
		baseline, err = s.loadBaseline(ctx, s.opts.BaselineRev, s.opts.TranslationFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load baseline snapshot: %w", err)
		}
		s.logger.Debug("loaded baseline snapshot",
			"rev", s.opts.BaselineRev,
			"terms", len(baseline.Terms))
	} else {
		s.logger.Debug("no baseline revision configured, skipping refinement")
	}

	tentative := merge.TwoWay(local, remote)
	actions := merge.Refine(tentative, baseline)

	plan := &Plan{Actions: actions, Baselined: baseline != nil}
	added, updated, removed := plan.Counts()
	s.logger.Info("computed sync plan",
		"tentative", len(tentative),
		"added", added,
		"updated", updated,
		"removed", removed,
		"baselined", plan.Baselined)

	return plan, nil
}
