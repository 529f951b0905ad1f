package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arthUFO12/CivicProject/common/llm"
	"github.com/arthUFO12/CivicProject/common/logger"
)

// ErrEmptyCompletion is returned when the model replies with only whitespace.
var ErrEmptyCompletion = errors.New("no response")

// AIService forwards a prompt to the language model.
type AIService interface {
	// Rewrite sends prompt as a single user message and returns the trimmed reply.
	Rewrite(ctx context.Context, prompt string) (string, error)
}

type AIOptions struct {
	Temperature *float64
	MaxTokens   int
}

type aiService struct {
	client llm.TextClient
	opts   AIOptions
}

func NewAIService(client llm.TextClient, opts AIOptions) AIService {
	return &aiService{
		client: client,
		opts:   opts,
	}
}

func (s *aiService) Rewrite(ctx context.Context, prompt string) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "editor.service.ai"})

	sc := logger.StartSpan(ctx, "ai.rewrite")
	defer sc.End()
	ctx = sc.Context()

	resp, err := s.client.Complete(ctx, llm.TextRequest{
		Prompt:      prompt,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "completion failed",
			"error", err,
			"model", s.client.Model(),
			"retryable", llm.IsRetryable(ctx, err))
		return "", fmt.Errorf("completing prompt: %w", err)
	}

	rewritten := strings.TrimSpace(resp.Content)
	if rewritten == "" {
		sc.RecordError(ErrEmptyCompletion)
		slog.WarnContext(ctx, "completion was empty", "model", s.client.Model(), "finish_reason", resp.FinishReason)
		return "", ErrEmptyCompletion
	}

	slog.DebugContext(ctx, "prompt rewritten", "chars", len(rewritten))
	return rewritten, nil
}
