package handler_test

import (
	"context"

	"github.com/arthUFO12/CivicProject/internal/document"
	"github.com/arthUFO12/CivicProject/internal/model"
	"github.com/arthUFO12/CivicProject/internal/service"
)

type mockAIService struct {
	rewriteFn func(ctx context.Context, prompt string) (string, error)
}

func (m *mockAIService) Rewrite(ctx context.Context, prompt string) (string, error) {
	if m.rewriteFn != nil {
		return m.rewriteFn(ctx, prompt)
	}
	return "", nil
}

type mockToneService struct {
	rewriteFn func(ctx context.Context, mode model.Mode, text string) string
	quoteFn   func(ctx context.Context, mode model.Mode) string
}

func (m *mockToneService) Rewrite(ctx context.Context, mode model.Mode, text string) string {
	if m.rewriteFn != nil {
		return m.rewriteFn(ctx, mode, text)
	}
	return ""
}

func (m *mockToneService) Quote(ctx context.Context, mode model.Mode) string {
	if m.quoteFn != nil {
		return m.quoteFn(ctx, mode)
	}
	return ""
}

type mockDocumentService struct {
	getFn        func(ctx context.Context, mode model.Mode) (document.Document, error)
	saveFn       func(ctx context.Context, mode model.Mode, doc document.Document) (int64, error)
	resetFn      func(ctx context.Context, mode model.Mode) (document.Document, error)
	processFn    func(ctx context.Context, mode model.Mode, doc document.Document) (*service.ProcessResult, error)
	exportHTMLFn func(ctx context.Context, mode model.Mode) (string, error)
	revisionsFn  func(ctx context.Context, mode model.Mode, limit int) ([]model.Revision, error)
}

func (m *mockDocumentService) Get(ctx context.Context, mode model.Mode) (document.Document, error) {
	if m.getFn != nil {
		return m.getFn(ctx, mode)
	}
	return document.Initial(), nil
}

func (m *mockDocumentService) Save(ctx context.Context, mode model.Mode, doc document.Document) (int64, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, mode, doc)
	}
	return 0, nil
}

func (m *mockDocumentService) Reset(ctx context.Context, mode model.Mode) (document.Document, error) {
	if m.resetFn != nil {
		return m.resetFn(ctx, mode)
	}
	return document.Initial(), nil
}

func (m *mockDocumentService) Process(ctx context.Context, mode model.Mode, doc document.Document) (*service.ProcessResult, error) {
	if m.processFn != nil {
		return m.processFn(ctx, mode, doc)
	}
	return &service.ProcessResult{Document: doc}, nil
}

func (m *mockDocumentService) ExportHTML(ctx context.Context, mode model.Mode) (string, error) {
	if m.exportHTMLFn != nil {
		return m.exportHTMLFn(ctx, mode)
	}
	return "", nil
}

func (m *mockDocumentService) Revisions(ctx context.Context, mode model.Mode, limit int) ([]model.Revision, error) {
	if m.revisionsFn != nil {
		return m.revisionsFn(ctx, mode, limit)
	}
	return nil, nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error {
	return m.err
}
