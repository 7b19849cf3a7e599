package loader

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"termsync/internal/merge"
	"termsync/internal/models"
	"termsync/pkg/api"
)

//go:generate moq -out remote_mock.go . TermReader

// TermReader is the slice of the API client the remote loader depends on.
type TermReader interface {
	ListTerms(ctx context.Context, token, projectID string) ([]api.Term, error)
	ListTranslations(ctx context.Context, token, projectID, locale string) ([]api.Translation, error)
}

// Remote fetches the current server state for one locale. Traduora stores
// terms and translations separately, so the two collections are joined by
// term id: a term without a translation yet appears with empty text, and a
// translation whose term no longer exists is dropped.
func Remote(ctx context.Context, client TermReader, token, projectID, locale string) ([]models.RemoteTerm, error) {
	terms, err := client.ListTerms(ctx, token, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load terms: %w", err)
	}

	translations, err := client.ListTranslations(ctx, token, projectID, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations for locale %s: %w", locale, err)
	}

	slices.SortFunc(terms, func(a, b api.Term) int {
		return cmp.Compare(a.ID, b.ID)
	})
	slices.SortFunc(translations, func(a, b api.Translation) int {
		return cmp.Compare(a.TermID, b.TermID)
	})

	remote := make([]models.RemoteTerm, 0, len(terms))
	merge.Join(terms, translations,
		func(t api.Term) string { return t.ID },
		func(t api.Translation) string { return t.TermID },
		func(t api.Term, tr api.Translation) {
			remote = append(remote, models.RemoteTerm{ID: t.ID, Key: t.Value, Text: tr.Value})
		},
		func(t api.Term) {
			remote = append(remote, models.RemoteTerm{ID: t.ID, Key: t.Value})
		},
		func(api.Translation) {
			// translation for a deleted term, nothing to sync against
		},
	)
	return remote, nil
}
