package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/arthUFO12/CivicProject/core/db"
	"github.com/arthUFO12/CivicProject/internal/model"
)

// Bodies are JSON rather than JSONB so they read back byte for byte.
const schema = `
CREATE TABLE IF NOT EXISTS documents (
	mode        TEXT PRIMARY KEY,
	body        JSON NOT NULL,
	revision_id BIGINT NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS document_revisions (
	id         BIGINT PRIMARY KEY,
	mode       TEXT NOT NULL,
	body       JSON NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS document_revisions_mode_created_idx
	ON document_revisions (mode, created_at DESC);
`

const (
	getDocumentSQL = `SELECT body, revision_id, updated_at FROM documents WHERE mode = $1`

	upsertDocumentSQL = `
INSERT INTO documents (mode, body, revision_id, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (mode) DO UPDATE
SET body = EXCLUDED.body, revision_id = EXCLUDED.revision_id, updated_at = EXCLUDED.updated_at`

	insertRevisionSQL = `INSERT INTO document_revisions (id, mode, body, created_at) VALUES ($1, $2, $3, $4)`

	listRevisionsSQL = `
SELECT id, body, created_at FROM document_revisions
WHERE mode = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`
)

type postgresDocumentStore struct {
	db *db.DB
}

// NewPostgresDocumentStore creates the tables if needed and returns a store
// that keeps every revision in document_revisions.
func NewPostgresDocumentStore(ctx context.Context, database *db.DB) (DocumentStore, error) {
	if _, err := database.Pool().Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure document schema: %w", err)
	}
	return &postgresDocumentStore{db: database}, nil
}

func (s *postgresDocumentStore) Get(ctx context.Context, mode model.Mode) (*model.Revision, error) {
	rev := &model.Revision{Mode: mode}
	var body []byte
	err := s.db.Pool().QueryRow(ctx, getDocumentSQL, string(mode)).Scan(&body, &rev.ID, &rev.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	rev.Body = body
	return rev, nil
}

func (s *postgresDocumentStore) Put(ctx context.Context, rev *model.Revision) error {
	if err := validBody(rev.Body); err != nil {
		return err
	}
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}

	return s.db.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, upsertDocumentSQL, string(rev.Mode), []byte(rev.Body), rev.ID, rev.CreatedAt); err != nil {
			return fmt.Errorf("upsert document: %w", err)
		}
		if _, err := tx.Exec(ctx, insertRevisionSQL, rev.ID, string(rev.Mode), []byte(rev.Body), rev.CreatedAt); err != nil {
			return fmt.Errorf("insert revision: %w", err)
		}
		return nil
	})
}

func (s *postgresDocumentStore) ListRevisions(ctx context.Context, mode model.Mode, limit int) ([]model.Revision, error) {
	if limit <= 0 {
		limit = revisionLimit
	}

	rows, err := s.db.Pool().Query(ctx, listRevisionsSQL, string(mode), limit)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	var revisions []model.Revision
	for rows.Next() {
		rev := model.Revision{Mode: mode}
		var body []byte
		if err := rows.Scan(&rev.ID, &body, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		rev.Body = body
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}
	return revisions, nil
}

func (s *postgresDocumentStore) Ping(ctx context.Context) error {
	return s.db.Pool().Ping(ctx)
}

func (s *postgresDocumentStore) Close() error {
	s.db.Close()
	return nil
}
