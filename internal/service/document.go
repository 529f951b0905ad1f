package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/arthUFO12/CivicProject/common/id"
	"github.com/arthUFO12/CivicProject/common/logger"
	"github.com/arthUFO12/CivicProject/internal/document"
	"github.com/arthUFO12/CivicProject/internal/model"
	"github.com/arthUFO12/CivicProject/internal/prompt"
	"github.com/arthUFO12/CivicProject/internal/store"
)

// maxConcurrentRewrites bounds upstream calls made by a single Process.
const maxConcurrentRewrites = 4

// DocumentService owns the persisted editor document for each mode.
type DocumentService interface {
	Get(ctx context.Context, mode model.Mode) (document.Document, error)
	Save(ctx context.Context, mode model.Mode, doc document.Document) (int64, error)
	Reset(ctx context.Context, mode model.Mode) (document.Document, error)
	Process(ctx context.Context, mode model.Mode, doc document.Document) (*ProcessResult, error)
	ExportHTML(ctx context.Context, mode model.Mode) (string, error)
	Revisions(ctx context.Context, mode model.Mode, limit int) ([]model.Revision, error)
}

// ProcessResult reports what the change pipeline did to a document.
type ProcessResult struct {
	Document   document.Document
	Rewritten  []int // block positions replaced by a rewrite
	Marked     []int // block positions that received the sentiment mark
	RevisionID int64
}

type documentService struct {
	store store.DocumentStore
	tone  ToneService
}

func NewDocumentService(documentStore store.DocumentStore, tone ToneService) DocumentService {
	return &documentService{
		store: documentStore,
		tone:  tone,
	}
}

func withDocumentFields(ctx context.Context, mode model.Mode) context.Context {
	return logger.WithLogFields(ctx, logger.LogFields{
		Mode:      logger.Ptr(mode.String()),
		Component: "editor.service.document",
	})
}

// Get returns the stored document without block ids, or the initial value
// when nothing has been saved for the mode.
func (s *documentService) Get(ctx context.Context, mode model.Mode) (document.Document, error) {
	ctx = withDocumentFields(ctx, mode)

	rev, err := s.store.Get(ctx, mode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.DebugContext(ctx, "no saved document, using initial value")
			return document.Initial(), nil
		}
		slog.ErrorContext(ctx, "failed to load document", "error", err)
		return nil, fmt.Errorf("loading document: %w", err)
	}

	var doc document.Document
	if err := json.Unmarshal(rev.Body, &doc); err != nil {
		slog.ErrorContext(ctx, "stored document is corrupt", "error", err, "revision_id", rev.ID)
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return doc.StripIDs(), nil
}

func (s *documentService) Save(ctx context.Context, mode model.Mode, doc document.Document) (int64, error) {
	ctx = withDocumentFields(ctx, mode)

	if err := doc.Validate(); err != nil {
		return 0, err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("encoding document: %w", err)
	}

	rev := &model.Revision{
		ID:   id.New(),
		Mode: mode,
		Body: body,
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{RevisionID: logger.Ptr(rev.ID)})

	if err := s.store.Put(ctx, rev); err != nil {
		slog.ErrorContext(ctx, "failed to save document", "error", err)
		return 0, fmt.Errorf("saving document: %w", err)
	}

	slog.InfoContext(ctx, "document saved", "blocks", len(doc))
	return rev.ID, nil
}

func (s *documentService) Reset(ctx context.Context, mode model.Mode) (document.Document, error) {
	doc := document.Initial()
	if _, err := s.Save(ctx, mode, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Process runs the editor change pipeline: blocks containing the rewrite
// trigger are rewritten in the mode's tone with their run formatting kept,
// blocks containing the mode keyword get the sentiment mark, and the result
// is saved.
func (s *documentService) Process(ctx context.Context, mode model.Mode, doc document.Document) (*ProcessResult, error) {
	ctx = withDocumentFields(ctx, mode)

	sc := logger.StartSpan(ctx, "document.process")
	defer sc.End()
	ctx = sc.Context()

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	out := doc.Clone()
	result := &ProcessResult{}

	rewrites := document.Positions(document.FindWord(out, prompt.RewriteTrigger))
	if len(rewrites) > 0 {
		replaced := make([]document.Block, len(rewrites))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxConcurrentRewrites)
		for i, pos := range rewrites {
			block := out[pos]
			g.Go(func() error {
				rewritten := s.tone.Rewrite(gctx, mode, block.PlainText())
				replaced[i] = document.MatchFont(block, rewritten)
				return nil
			})
		}
		_ = g.Wait() // rewrites fall back to fixed text instead of failing

		for i, pos := range rewrites {
			out[pos] = replaced[i]
		}
		result.Rewritten = rewrites
		slog.InfoContext(ctx, "blocks rewritten", "count", len(rewrites))
	}

	for _, pos := range document.Positions(document.FindWord(out, mode.Keyword())) {
		marked, changed := document.MarkSentiment(out[pos])
		if !changed {
			continue
		}
		out[pos] = marked
		result.Marked = append(result.Marked, pos)
	}

	revisionID, err := s.Save(ctx, mode, out)
	if err != nil {
		sc.RecordError(err)
		return nil, err
	}

	result.Document = out
	result.RevisionID = revisionID
	return result, nil
}

func (s *documentService) ExportHTML(ctx context.Context, mode model.Mode) (string, error) {
	doc, err := s.Get(ctx, mode)
	if err != nil {
		return "", err
	}
	return document.RenderHTML(doc), nil
}

func (s *documentService) Revisions(ctx context.Context, mode model.Mode, limit int) ([]model.Revision, error) {
	ctx = withDocumentFields(ctx, mode)

	revisions, err := s.store.ListRevisions(ctx, mode, limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list revisions", "error", err)
		return nil, fmt.Errorf("listing revisions: %w", err)
	}
	return revisions, nil
}
