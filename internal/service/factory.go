package service

import (
	"github.com/arthUFO12/CivicProject/common/llm"
	"github.com/arthUFO12/CivicProject/internal/store"
)

type ServicesConfig struct {
	Documents   store.DocumentStore
	TextClient  llm.TextClient
	QuoteClient llm.Client // optional
	AI          AIOptions
	Quote       QuoteOptions
}

type Services struct {
	ai        AIService
	tone      ToneService
	documents DocumentService
	store     store.DocumentStore
}

func NewServices(cfg ServicesConfig) *Services {
	ai := NewAIService(cfg.TextClient, cfg.AI)
	tone := NewToneService(ai, cfg.QuoteClient, cfg.Quote)

	return &Services{
		ai:        ai,
		tone:      tone,
		documents: NewDocumentService(cfg.Documents, tone),
		store:     cfg.Documents,
	}
}

func (s *Services) AI() AIService {
	return s.ai
}

func (s *Services) Tone() ToneService {
	return s.tone
}

func (s *Services) Documents() DocumentService {
	return s.documents
}

// Store exposes the document store for health checks.
func (s *Services) Store() store.DocumentStore {
	return s.store
}
