package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termsync/internal/auth"
	"termsync/internal/config"
	"termsync/internal/models"
	"termsync/internal/storage"
	"termsync/internal/sync"
	pkgapi "termsync/pkg/api"
)

const testProject = "92047938-c050-4d9c-83f8-6b1d7fae6b01"

// fakeIO records everything the commands print.
type fakeIO struct {
	out      strings.Builder
	password string
}

func (f *fakeIO) Println(a ...any) {
	fmt.Fprintln(&f.out, a...)
}

func (f *fakeIO) Printf(format string, a ...any) {
	fmt.Fprintf(&f.out, format, a...)
}

func (f *fakeIO) ReadInput(prompt string) (string, error) {
	return "", nil
}

func (f *fakeIO) ReadPassword(prompt string) (string, error) {
	return f.password, nil
}

// fakeAuthAPI implements auth.APIClient.
type fakeAuthAPI struct {
	lastUsername string
	lastPassword string
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (*pkgapi.TokenResponse, error) {
	f.lastUsername = username
	f.lastPassword = password
	return &pkgapi.TokenResponse{
		AccessToken: "opaque-token",
		TokenType:   "bearer",
		ExpiresIn:   "86400s",
	}, nil
}

// memAuthStore implements storage.AuthStorage in memory.
type memAuthStore struct {
	auth *storage.AuthData
}

func (m *memAuthStore) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	m.auth = auth
	return nil
}

func (m *memAuthStore) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if m.auth == nil {
		return nil, storage.ErrAuthNotFound
	}
	return m.auth, nil
}

func (m *memAuthStore) DeleteAuth(ctx context.Context) error {
	if m.auth == nil {
		return storage.ErrAuthNotFound
	}
	m.auth = nil
	return nil
}

// memMetadata implements storage.MetadataStorage in memory.
type memMetadata struct {
	last *storage.LastSync
}

func (m *memMetadata) SaveLastSync(ctx context.Context, sync *storage.LastSync) error {
	m.last = sync
	return nil
}

func (m *memMetadata) GetLastSync(ctx context.Context) (*storage.LastSync, error) {
	if m.last == nil {
		return nil, storage.ErrMetadataNotFound
	}
	return m.last, nil
}

// fakeTermAPI implements sync.TermAPI against in-memory remote state.
type fakeTermAPI struct {
	terms        []pkgapi.Term
	translations []pkgapi.Translation

	created []string
	edited  []string
	deleted []string
}

func (f *fakeTermAPI) ListTerms(ctx context.Context, token, projectID string) ([]pkgapi.Term, error) {
	return f.terms, nil
}

func (f *fakeTermAPI) ListTranslations(ctx context.Context, token, projectID, locale string) ([]pkgapi.Translation, error) {
	return f.translations, nil
}

func (f *fakeTermAPI) CreateTerm(ctx context.Context, token, projectID, value string) (*pkgapi.Term, error) {
	f.created = append(f.created, value)
	return &pkgapi.Term{ID: "id-" + value, Value: value}, nil
}

func (f *fakeTermAPI) EditTranslation(ctx context.Context, token, projectID, locale, termID, value string) error {
	f.edited = append(f.edited, termID+"="+value)
	return nil
}

func (f *fakeTermAPI) DeleteTerm(ctx context.Context, token, projectID, termID string) error {
	f.deleted = append(f.deleted, termID)
	return nil
}

type fixture struct {
	cli      *Cli
	io       *fakeIO
	authAPI  *fakeAuthAPI
	termAPI  *fakeTermAPI
	store    *memAuthStore
	metadata *memMetadata
}

func newFixture(t *testing.T, localJSON string) *fixture {
	t.Helper()

	dir := t.TempDir()
	file := filepath.Join(dir, "en.json")
	require.NoError(t, os.WriteFile(file, []byte(localJSON), 0o600))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		BaseURL:         "http://localhost:8080",
		Username:        "translator",
		ProjectID:       testProject,
		Locale:          "en",
		TranslationFile: file,
	}

	f := &fixture{
		io:       &fakeIO{},
		authAPI:  &fakeAuthAPI{},
		termAPI:  &fakeTermAPI{},
		store:    &memAuthStore{},
		metadata: &memMetadata{},
	}

	authService := auth.NewService(f.authAPI, f.store, logger)
	syncService := sync.NewService(f.termAPI, f.metadata, logger, sync.Options{
		ProjectID:       cfg.ProjectID,
		Locale:          cfg.Locale,
		TranslationFile: cfg.TranslationFile,
	})

	f.cli = New(cfg, authService, syncService, f.metadata, f.io)
	f.cli.selectActions = func(actions []models.Action) ([]models.Action, error) {
		return actions, nil
	}

	return f
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	require.NoError(t, f.cli.RunLogin(context.Background()))
}

func TestRunLogin_PromptsWhenPasswordUnset(t *testing.T) {
	f := newFixture(t, `{}`)
	f.io.password = "s3cret"

	err := f.cli.RunLogin(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "translator", f.authAPI.lastUsername)
	assert.Equal(t, "s3cret", f.authAPI.lastPassword)
	assert.NotNil(t, f.store.auth)
	assert.Contains(t, f.io.out.String(), "Logged in as translator")
}

func TestRunLogin_UsesConfiguredPassword(t *testing.T) {
	f := newFixture(t, `{}`)
	f.cli.cfg.Password = "from-env"

	err := f.cli.RunLogin(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "from-env", f.authAPI.lastPassword)
}

func TestRunLogout(t *testing.T) {
	f := newFixture(t, `{}`)
	f.login(t)

	err := f.cli.RunLogout(context.Background())
	require.NoError(t, err)
	assert.Nil(t, f.store.auth)

	// second logout has no session left
	err = f.cli.RunLogout(context.Background())
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestRunStatus_NotLoggedIn(t *testing.T) {
	f := newFixture(t, `{}`)

	err := f.cli.RunStatus(context.Background())
	require.NoError(t, err)

	out := f.io.out.String()
	assert.Contains(t, out, "not logged in")
	assert.Contains(t, out, "Last sync:        never")
	assert.Contains(t, out, testProject)
}

func TestRunStatus_AfterSync(t *testing.T) {
	f := newFixture(t, `{"greeting":"Hello"}`)
	f.login(t)

	require.NoError(t, f.cli.RunSync(context.Background(), true))

	f.io.out.Reset()
	err := f.cli.RunStatus(context.Background())
	require.NoError(t, err)

	out := f.io.out.String()
	assert.Contains(t, out, "valid until")
	assert.Contains(t, out, "1 actions applied")
}

func TestRunDiff_InSync(t *testing.T) {
	f := newFixture(t, `{"greeting":"Hello"}`)
	f.termAPI.terms = []pkgapi.Term{{ID: "t1", Value: "greeting"}}
	f.termAPI.translations = []pkgapi.Translation{{TermID: "t1", Value: "Hello"}}
	f.login(t)

	err := f.cli.RunDiff(context.Background())
	require.NoError(t, err)

	assert.Contains(t, f.io.out.String(), "in sync")
	assert.Empty(t, f.termAPI.created)
	assert.Empty(t, f.termAPI.edited)
	assert.Empty(t, f.termAPI.deleted)
}

func TestRunDiff_ShowsPlanWithoutApplying(t *testing.T) {
	f := newFixture(t, `{"greeting":"Hi"}`)
	f.termAPI.terms = []pkgapi.Term{
		{ID: "t1", Value: "greeting"},
		{ID: "t2", Value: "farewell"},
	}
	f.termAPI.translations = []pkgapi.Translation{
		{TermID: "t1", Value: "Hello"},
		{TermID: "t2", Value: "Bye"},
	}
	f.login(t)

	err := f.cli.RunDiff(context.Background())
	require.NoError(t, err)

	out := f.io.out.String()
	assert.Contains(t, out, "greeting")
	assert.Contains(t, out, "farewell")
	assert.Contains(t, out, "removals may undo edits")

	assert.Empty(t, f.termAPI.edited)
	assert.Empty(t, f.termAPI.deleted)
}

func TestRunDiff_RequiresLogin(t *testing.T) {
	f := newFixture(t, `{}`)

	err := f.cli.RunDiff(context.Background())
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestRunSync_AppliesPlan(t *testing.T) {
	f := newFixture(t, `{"greeting":"Hello","farewell":"Bye"}`)
	f.termAPI.terms = []pkgapi.Term{{ID: "t1", Value: "greeting"}}
	f.termAPI.translations = []pkgapi.Translation{{TermID: "t1", Value: "Hi"}}
	f.login(t)

	err := f.cli.RunSync(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, []string{"farewell"}, f.termAPI.created)
	assert.Equal(t, []string{"id-farewell=Bye", "t1=Hello"}, f.termAPI.edited)
	assert.NotNil(t, f.metadata.last)
	assert.Equal(t, 2, f.metadata.last.Applied)
}

func TestRunSync_RespectsSelection(t *testing.T) {
	f := newFixture(t, `{"greeting":"Hello","farewell":"Bye"}`)
	f.termAPI.terms = []pkgapi.Term{{ID: "t1", Value: "greeting"}}
	f.termAPI.translations = []pkgapi.Translation{{TermID: "t1", Value: "Hi"}}
	f.login(t)

	// keep only the update, drop the addition
	f.cli.selectActions = func(actions []models.Action) ([]models.Action, error) {
		var picked []models.Action
		for _, a := range actions {
			if a.Kind == models.ActionUpdate {
				picked = append(picked, a)
			}
		}
		return picked, nil
	}

	err := f.cli.RunSync(context.Background(), false)
	require.NoError(t, err)

	assert.Empty(t, f.termAPI.created)
	assert.Equal(t, []string{"t1=Hello"}, f.termAPI.edited)
}

func TestRunSync_NothingSelected(t *testing.T) {
	f := newFixture(t, `{"greeting":"Hello"}`)
	f.login(t)

	f.cli.selectActions = func(actions []models.Action) ([]models.Action, error) {
		return nil, nil
	}

	err := f.cli.RunSync(context.Background(), false)
	require.NoError(t, err)

	assert.Contains(t, f.io.out.String(), "Nothing selected")
	assert.Empty(t, f.termAPI.created)
	assert.Nil(t, f.metadata.last)
}

func TestRunSync_InSyncDoesNothing(t *testing.T) {
	f := newFixture(t, `{"greeting":"Hello"}`)
	f.termAPI.terms = []pkgapi.Term{{ID: "t1", Value: "greeting"}}
	f.termAPI.translations = []pkgapi.Translation{{TermID: "t1", Value: "Hello"}}
	f.login(t)

	err := f.cli.RunSync(context.Background(), true)
	require.NoError(t, err)

	assert.Contains(t, f.io.out.String(), "in sync")
	assert.Nil(t, f.metadata.last)
}
