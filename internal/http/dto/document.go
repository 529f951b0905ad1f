package dto

import (
	"encoding/json"
	"time"

	"github.com/arthUFO12/CivicProject/internal/document"
	"github.com/arthUFO12/CivicProject/internal/model"
)

type DocumentResponse struct {
	Mode     string            `json:"mode"`
	Document document.Document `json:"document"`
}

type SaveDocumentResponse struct {
	Mode       string `json:"mode"`
	RevisionID int64  `json:"revision_id,string"`
}

type ProcessDocumentResponse struct {
	Mode       string            `json:"mode"`
	Document   document.Document `json:"document"`
	Rewritten  []int             `json:"rewritten"`
	Marked     []int             `json:"marked"`
	RevisionID int64             `json:"revision_id,string"`
}

type RevisionResponse struct {
	ID        int64           `json:"id,string"`
	Document  json.RawMessage `json:"document"`
	CreatedAt time.Time       `json:"created_at"`
}

func ToRevisionResponses(revs []model.Revision) []RevisionResponse {
	out := make([]RevisionResponse, 0, len(revs))
	for _, r := range revs {
		out = append(out, RevisionResponse{
			ID:        r.ID,
			Document:  r.Body,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

// nonNil keeps empty position lists encoded as [] rather than null.
func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func ToProcessDocumentResponse(mode model.Mode, doc document.Document, rewritten, marked []int, revisionID int64) ProcessDocumentResponse {
	return ProcessDocumentResponse{
		Mode:       mode.String(),
		Document:   doc,
		Rewritten:  nonNil(rewritten),
		Marked:     nonNil(marked),
		RevisionID: revisionID,
	}
}
