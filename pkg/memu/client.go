package memu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the MemU memory service REST API.
//
// The provider has shipped two method surfaces over time
// (memorize/retrieve and memorize_conversation/search); this client pins
// the versioned /api/v1/memory contract and nothing else.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new MemU client. An empty base URL selects the
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

// MemorizeConversation creates an ingestion task via POST /api/v1/memory/memorize.
func (c *Client) MemorizeConversation(ctx context.Context, req MemorizeRequest) (*MemorizeResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API key is not set", ErrAuthentication)
	}
	if len(req.Conversation) == 0 {
		return nil, fmt.Errorf("memu: conversation is empty")
	}

	var out MemorizeResponse
	if err := c.post(ctx, "/api/v1/memory/memorize", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Retrieve queries stored context via POST /api/v1/memory/retrieve.
func (c *Client) Retrieve(ctx context.Context, req RetrieveRequest) (*RetrieveResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API key is not set", ErrAuthentication)
	}
	if req.Query == "" {
		return nil, fmt.Errorf("memu: query is empty")
	}
	if req.Method == "" {
		req.Method = MethodEmbedding
	}

	var out RetrieveResponse
	if err := c.post(ctx, "/api/v1/memory/retrieve", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post sends a JSON request and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("memu: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("memu: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: API error %d: %s", ErrAuthentication, resp.StatusCode, string(raw))
	case resp.StatusCode != http.StatusOK:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("memu: API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
