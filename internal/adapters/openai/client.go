// Package openai implements the remote text-generation port over the OpenAI
// chat completions API. One plain completion call, no streaming.
package openai

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const completionsPath = "/v1/chat/completions"

// GenerationError wraps any failure of the remote call — transport, timeout,
// non-2xx, or an empty completion. The orchestrator catches it and degrades
// to the agent result.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "openai: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

// Config holds the client settings. Model and temperature are fixed per
// process; they are configuration constants, not per-request knobs.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// Client is a thin resty-based wrapper around the completions endpoint.
type Client struct {
	rc          *resty.Client
	model       string
	temperature float64
}

// NewClient builds the client. The API key must be non-empty; callers decide
// beforehand whether the AI branch is configured at all.
func NewClient(cfg Config) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(60 * time.Second).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &Client{rc: rc, model: cfg.Model, temperature: cfg.Temperature}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate runs one completion over the prompt and returns the assistant
// text verbatim.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body := chatRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	var out chatResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post(completionsPath)
	if err != nil {
		return "", &GenerationError{Err: errors.Wrap(err, "completion request")}
	}
	if resp.IsError() {
		msg := resp.Status()
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", &GenerationError{Err: errors.Errorf("completion status %d: %s", resp.StatusCode(), msg)}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", &GenerationError{Err: errors.New("empty completion")}
	}

	return out.Choices[0].Message.Content, nil
}
