package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arthUFO12/CivicProject/common/llm"
	"github.com/arthUFO12/CivicProject/common/logger"
	"github.com/arthUFO12/CivicProject/internal/model"
	"github.com/arthUFO12/CivicProject/internal/prompt"
)

// Fixed replies used in place of model output when the upstream call fails.
const (
	RewriteFallback = "Error rewriting text."
	QuoteFallback   = "Error generating quote."
)

// ToneService rewrites text and generates quotes in a mode's tone. Failures
// never surface as errors; callers receive the fallback text instead.
type ToneService interface {
	Rewrite(ctx context.Context, mode model.Mode, text string) string
	Quote(ctx context.Context, mode model.Mode) string
}

// Quote is the structured reply requested from the quote model.
type Quote struct {
	Quote  string `json:"quote" jsonschema:"description=The quote text without surrounding quotation marks"`
	Author string `json:"author" jsonschema:"description=Speaker or author if known, otherwise empty"`
}

// String renders the quote the way the plain prompt asks for it.
func (q Quote) String() string {
	text := strings.Trim(strings.TrimSpace(q.Quote), `"“”`)
	if author := strings.TrimSpace(q.Author); author != "" {
		return fmt.Sprintf("\"%s\" - %s", text, author)
	}
	return fmt.Sprintf("\"%s\"", text)
}

type QuoteOptions struct {
	Temperature *float64
	MaxTokens   int
}

type toneService struct {
	ai          AIService
	quoteClient llm.Client // optional
	quoteOpts   QuoteOptions
	quoteSchema any
}

// NewToneService builds a ToneService. quoteClient may be nil, in which case
// quotes are requested through ai with the plain prompt.
func NewToneService(ai AIService, quoteClient llm.Client, quoteOpts QuoteOptions) ToneService {
	return &toneService{
		ai:          ai,
		quoteClient: quoteClient,
		quoteOpts:   quoteOpts,
		quoteSchema: llm.GenerateSchema[Quote](),
	}
}

func (s *toneService) Rewrite(ctx context.Context, mode model.Mode, text string) string {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Mode:      logger.Ptr(mode.String()),
		Component: "editor.service.tone",
	})

	rewritten, err := s.ai.Rewrite(ctx, prompt.Rewrite(mode, prompt.CleanRewriteInput(text)))
	if err != nil {
		slog.ErrorContext(ctx, "rewrite error", "error", err, "text", logger.Truncate(text, 200))
		return RewriteFallback
	}
	return rewritten
}

func (s *toneService) Quote(ctx context.Context, mode model.Mode) string {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Mode:      logger.Ptr(mode.String()),
		Component: "editor.service.tone",
	})

	if s.quoteClient == nil {
		quote, err := s.ai.Rewrite(ctx, prompt.Quote(mode))
		if err != nil {
			slog.ErrorContext(ctx, "generation error", "error", err)
			return QuoteFallback
		}
		return quote
	}

	var q Quote
	_, err := s.quoteClient.Chat(ctx, llm.Request{
		UserPrompt:  prompt.StructuredQuote(mode),
		SchemaName:  "quote",
		Schema:      s.quoteSchema,
		MaxTokens:   s.quoteOpts.MaxTokens,
		Temperature: s.quoteOpts.Temperature,
	}, &q)
	if err != nil {
		slog.ErrorContext(ctx, "generation error", "error", err, "retryable", llm.IsRetryable(ctx, err))
		return QuoteFallback
	}
	if strings.TrimSpace(q.Quote) == "" {
		slog.WarnContext(ctx, "generation error", "error", ErrEmptyCompletion)
		return QuoteFallback
	}
	return q.String()
}
