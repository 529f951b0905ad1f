package service_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/arthUFO12/CivicProject/common/llm"
	"github.com/arthUFO12/CivicProject/internal/model"
	"github.com/arthUFO12/CivicProject/internal/store"
)

type mockTextClient struct {
	completeFn func(ctx context.Context, req llm.TextRequest) (*llm.TextResponse, error)
	requests   []llm.TextRequest
}

func (m *mockTextClient) Complete(ctx context.Context, req llm.TextRequest) (*llm.TextResponse, error) {
	m.requests = append(m.requests, req)
	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return &llm.TextResponse{}, nil
}

func (m *mockTextClient) Model() string {
	return "mock-model"
}

type mockQuoteClient struct {
	chatFn func(ctx context.Context, req llm.Request, result any) (*llm.Response, error)
}

func (m *mockQuoteClient) Chat(ctx context.Context, req llm.Request, result any) (*llm.Response, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, req, result)
	}
	return &llm.Response{}, nil
}

func (m *mockQuoteClient) Model() string {
	return "mock-structured"
}

type mockAIService struct {
	mu        sync.Mutex
	rewriteFn func(ctx context.Context, prompt string) (string, error)
	prompts   []string
}

func (m *mockAIService) Rewrite(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.rewriteFn != nil {
		return m.rewriteFn(ctx, prompt)
	}
	return "", nil
}

type mockToneService struct {
	mu        sync.Mutex
	rewriteFn func(ctx context.Context, mode model.Mode, text string) string
	texts     []string
}

func (m *mockToneService) Rewrite(ctx context.Context, mode model.Mode, text string) string {
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()
	if m.rewriteFn != nil {
		return m.rewriteFn(ctx, mode, text)
	}
	return text
}

func (m *mockToneService) Quote(_ context.Context, _ model.Mode) string {
	return ""
}

type mockDocumentStore struct {
	store.DocumentStore
	getFn  func(ctx context.Context, mode model.Mode) (*model.Revision, error)
	putFn  func(ctx context.Context, rev *model.Revision) error
	listFn func(ctx context.Context, mode model.Mode, limit int) ([]model.Revision, error)
}

func (m *mockDocumentStore) Get(ctx context.Context, mode model.Mode) (*model.Revision, error) {
	if m.getFn != nil {
		return m.getFn(ctx, mode)
	}
	return nil, store.ErrNotFound
}

func (m *mockDocumentStore) Put(ctx context.Context, rev *model.Revision) error {
	if m.putFn != nil {
		return m.putFn(ctx, rev)
	}
	return nil
}

func (m *mockDocumentStore) ListRevisions(ctx context.Context, mode model.Mode, limit int) ([]model.Revision, error) {
	if m.listFn != nil {
		return m.listFn(ctx, mode, limit)
	}
	return nil, nil
}

func revisionOf(mode model.Mode, body string) *model.Revision {
	return &model.Revision{ID: 1, Mode: mode, Body: json.RawMessage(body)}
}
