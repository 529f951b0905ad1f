package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/arthUFO12/CivicProject/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// revisionLimit caps the history kept by the Redis and memory backends and is
// the default page size for listing.
const revisionLimit = 50

// DocumentStore persists one serialized editor document per mode.
// Bodies are stored verbatim.
type DocumentStore interface {
	// Get returns the current revision for the mode, or ErrNotFound.
	Get(ctx context.Context, mode model.Mode) (*model.Revision, error)
	// Put replaces the mode's document and records the revision.
	Put(ctx context.Context, rev *model.Revision) error
	// ListRevisions returns the newest revisions first.
	ListRevisions(ctx context.Context, mode model.Mode, limit int) ([]model.Revision, error)
	Ping(ctx context.Context) error
	Close() error
}

func validBody(body json.RawMessage) error {
	if !json.Valid(body) {
		return errors.New("document body is not valid JSON")
	}
	return nil
}
