package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o"

// Config configures the OpenRouter-backed provider.
type Config struct {
	APIKey  string
	BaseURL string // e.g. https://openrouter.ai/api/v1; empty means api.openai.com
	Model   string

	// Optional OpenRouter attribution headers.
	Referrer string
	Title    string
}

// OpenRouter is a chat-completion client for any OpenAI-compatible API.
type OpenRouter struct {
	client *openai.Client
	model  string
}

type headerTransport struct {
	rt      http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cl := req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			cl.Header.Add(k, v)
		}
	}
	return t.rt.RoundTrip(cl)
}

// NewOpenRouter creates the provider. The API key is mandatory.
func NewOpenRouter(cfg Config) (*OpenRouter, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	oaCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oaCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Referrer != "" || cfg.Title != "" {
		h := http.Header{}
		if cfg.Referrer != "" {
			h.Set("HTTP-Referer", cfg.Referrer)
		}
		if cfg.Title != "" {
			h.Set("X-Title", cfg.Title)
		}
		oaCfg.HTTPClient = &http.Client{Transport: headerTransport{rt: http.DefaultTransport, headers: h}}
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &OpenRouter{
		client: openai.NewClientWithConfig(oaCfg),
		model:  model,
	}, nil
}

// Generate runs one chat completion. Provider errors propagate as-is,
// wrapped once for context.
func (c *OpenRouter) Generate(ctx context.Context, input GenerateInput) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if input.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: input.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("llm: chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm: empty completion response")
	}

	return resp.Choices[0].Message.Content, nil
}

// Model returns the configured model identifier.
func (c *OpenRouter) Model() string {
	return c.model
}
