package geneticsqa

import (
	"context"
	"errors"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// CompletionRequest carries everything one model call needs.
type CompletionRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Completer issues a single chat-style completion and returns the raw
// response text. Pipeline drivers depend on this interface so tests can
// substitute a stub for the remote endpoint.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ModelClient talks to an OpenAI-compatible chat completion endpoint.
// Failures are classified into the pipeline error taxonomy: non-2xx and
// network errors become TransportError, deadline hits become ErrTimeout.
type ModelClient struct {
	client  *openai.Client
	timeout time.Duration
	retries int
	backoff time.Duration
}

// NewModelClient creates a client for the OpenRouter endpoint. Transient
// transport failures and timeouts are retried a bounded number of times
// with linear backoff; malformed responses are never retried.
func NewModelClient(apiKey string, timeout time.Duration) *ModelClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL
	return &ModelClient{
		client:  openai.NewClientWithConfig(cfg),
		timeout: timeout,
		retries: 3,
		backoff: 2 * time.Second,
	}
}

// Complete implements Completer.
func (mc *ModelClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var lastErr error
	for attempt := 0; attempt < mc.retries; attempt++ {
		if attempt > 0 {
			VerboseLog("Retrying request (attempt %d/%d) after: %v", attempt+1, mc.retries, lastErr)
			if err := pause(ctx, time.Duration(attempt)*mc.backoff); err != nil {
				return "", lastErr
			}
		}

		text, err := mc.completeOnce(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable(err) || ctx.Err() != nil {
			return "", err
		}
		log.Printf("Model request failed: %v", err)
	}
	return "", lastErr
}

func (mc *ModelClient) completeOnce(ctx context.Context, req CompletionRequest) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, mc.timeout)
	defer cancel()

	resp, err := mc.client.CreateChatCompletion(
		cctx,
		openai.ChatCompletionRequest{
			Model: req.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: req.Prompt,
				},
			},
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		},
	)
	if err != nil {
		return "", classify(cctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", &TransportError{Message: "no choices in response"}
	}
	return resp.Choices[0].Message.Content, nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &TransportError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &TransportError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
	}

	return &TransportError{Message: err.Error()}
}

// pause sleeps for d unless the context ends first. Drivers also use it for
// the fixed courtesy delay between API calls.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
