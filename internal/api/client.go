// Package api implements the HTTP client for a Traduora instance.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"termsync/pkg/api"
)

// Client is the HTTP client for the Traduora REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// retryMaxElapsed bounds the total time spent retrying one request.
	retryMaxElapsed time.Duration
}

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:         baseURL,
		retryMaxElapsed: 15 * time.Second,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login authenticates with the password grant and returns the issued token.
func (c *Client) Login(ctx context.Context, username, password string) (*api.TokenResponse, error) {
	req := api.TokenRequest{
		GrantType: "password",
		Username:  username,
		Password:  password,
	}
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/token", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListTerms returns all terms of the project.
func (c *Client) ListTerms(ctx context.Context, token, projectID string) ([]api.Term, error) {
	var resp api.TermsResponse
	path := fmt.Sprintf("/api/v1/projects/%s/terms", projectID)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list terms request failed: %w", err)
	}
	return resp.Data, nil
}

// ListTranslations returns the translations of the project for one locale.
func (c *Client) ListTranslations(ctx context.Context, token, projectID, locale string) ([]api.Translation, error) {
	var resp api.TranslationsResponse
	path := fmt.Sprintf("/api/v1/projects/%s/translations/%s", projectID, locale)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("list translations request failed: %w", err)
	}
	return resp.Data, nil
}

// CreateTerm creates a new term in the project and returns it, including the
// remote id needed for follow-up calls.
func (c *Client) CreateTerm(ctx context.Context, token, projectID, value string) (*api.Term, error) {
	req := api.CreateTermRequest{Value: value}
	var resp api.TermResponse
	path := fmt.Sprintf("/api/v1/projects/%s/terms", projectID)
	if err := c.doRequest(ctx, http.MethodPost, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("create term request failed: %w", err)
	}
	return &resp.Data, nil
}

// EditTranslation sets the translation of an existing term for the locale.
func (c *Client) EditTranslation(ctx context.Context, token, projectID, locale, termID, value string) error {
	req := api.EditTranslationRequest{TermID: termID, Value: value}
	var resp api.TranslationResponse
	path := fmt.Sprintf("/api/v1/projects/%s/translations/%s", projectID, locale)
	if err := c.doRequest(ctx, http.MethodPatch, path, token, req, &resp); err != nil {
		return fmt.Errorf("edit translation request failed: %w", err)
	}
	return nil
}

// DeleteTerm deletes the term from the project.
func (c *Client) DeleteTerm(ctx context.Context, token, projectID, termID string) error {
	path := fmt.Sprintf("/api/v1/projects/%s/terms/%s", projectID, termID)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete term request failed: %w", err)
	}
	return nil
}

// doRequest performs one HTTP request against the API. Transient failures
// (connection errors, 5xx, 429) are retried with exponential backoff; any
// other non-2xx status is permanent and reported with the server's error
// message when one is present.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	url := c.baseURL + path

	var jsonData []byte
	if body != nil {
		var err error
		jsonData, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	attempt := func() error {
		var bodyReader io.Reader
		if jsonData != nil {
			bodyReader = bytes.NewReader(jsonData)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		if jsonData != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			err := statusError(resp.StatusCode, respBody)
			if retryable(resp.StatusCode) {
				return err
			}
			return backoff.Permanent(err)
		}

		if result != nil {
			if err := json.Unmarshal(respBody, result); err != nil {
				return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
			}
		}
		return nil
	}

	return backoff.Retry(attempt, backoff.WithContext(c.newRetryBackoff(), ctx))
}

// newRetryBackoff builds the retry policy for one request.
func (c *Client) newRetryBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = c.retryMaxElapsed
	return bo
}

// retryable reports whether a status code is worth retrying.
func retryable(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests
}

// statusError turns a non-2xx response into an error, preferring the
// server's own error message over the raw body.
func statusError(status int, body []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return fmt.Errorf("server error (%d): %s", status, errResp.Error.Message)
	}
	return fmt.Errorf("request failed with status %d: %s", status, string(body))
}
