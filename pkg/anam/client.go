package anam

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrAuthentication is reported for a missing key (before any network I/O)
// and for provider 401/403 responses.
var ErrAuthentication = errors.New("anam: authentication failed")

// Client is the HTTP wrapper for the Anam avatar service REST API. The
// actual audio/video streaming happens between the browser SDK and the
// provider; this client only exchanges credentials.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Anam client. An empty base URL selects the
// hosted service.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// CreateSessionToken mints a short-lived session token for the given
// persona via POST /v1/auth/session-token.
func (c *Client) CreateSessionToken(ctx context.Context, persona PersonaConfig) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: API key is not set", ErrAuthentication)
	}

	body, err := json.Marshal(SessionTokenRequest{PersonaConfig: persona})
	if err != nil {
		return "", fmt.Errorf("anam: failed to marshal session token request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/auth/session-token", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("anam: failed to build session token request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("anam: failed to call session token API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: API error %d: %s", ErrAuthentication, resp.StatusCode, string(raw))
	case resp.StatusCode != http.StatusOK:
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("anam: session token API error %d: %s", resp.StatusCode, string(raw))
	}

	var tokenResp SessionTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("anam: failed to decode session token response: %w", err)
	}
	if tokenResp.SessionToken == "" {
		return "", fmt.Errorf("anam: session token missing from response")
	}
	return tokenResp.SessionToken, nil
}
