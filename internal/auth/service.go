// Package auth manages the Traduora session: logging in, caching the access
// token locally, and handing it out to commands while it is still valid.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"termsync/internal/storage"
	pkgapi "termsync/pkg/api"
)

//go:generate moq -out client_mock.go . APIClient

// APIClient is the part of the API client the auth service needs.
type APIClient interface {
	Login(ctx context.Context, username, password string) (*pkgapi.TokenResponse, error)
}

// ErrNotAuthenticated is returned when no valid session is cached.
var ErrNotAuthenticated = errors.New("not authenticated, run 'termsync login' first")

// Service provides login/logout and access to the cached session.
type Service struct {
	apiClient APIClient
	authStore storage.AuthStorage
	logger    *slog.Logger
}

// NewService creates a new auth service.
func NewService(apiClient APIClient, authStore storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		authStore: authStore,
		logger:    logger,
	}
}

// Login authenticates against the instance and caches the issued token.
func (s *Service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	resp, err := s.apiClient.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	auth := &storage.AuthData{
		Username:    username,
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresAt:   tokenExpiry(resp).Unix(),
	}

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("logged in", "username", username, "expires_at", time.Unix(auth.ExpiresAt, 0))
	return auth, nil
}

// Logout drops the cached session. Traduora tokens cannot be revoked
// server-side, so forgetting the token locally is all there is to do.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Token returns the cached access token if it has not expired yet.
func (s *Service) Token(ctx context.Context) (string, error) {
	auth, err := s.Session(ctx)
	if err != nil {
		return "", err
	}
	if time.Now().After(time.Unix(auth.ExpiresAt, 0)) {
		return "", fmt.Errorf("session expired, run 'termsync login' again")
	}
	return auth.AccessToken, nil
}

// Session returns the cached session data for status display.
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return auth, nil
}

// tokenExpiry determines when the issued token expires. The exp claim of
// the JWT is authoritative; the signature is not checked here, only the
// server can do that. When the token is not a parseable JWT the expires_in
// duration from the response is used instead.
func tokenExpiry(resp *pkgapi.TokenResponse) time.Time {
	parser := jwt.NewParser()
	if token, _, err := parser.ParseUnverified(resp.AccessToken, jwt.MapClaims{}); err == nil {
		if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}

	if d, err := time.ParseDuration(resp.ExpiresIn); err == nil && d > 0 {
		return time.Now().Add(d)
	}

	// no usable expiry information, assume the Traduora default of one day
	return time.Now().Add(24 * time.Hour)
}
