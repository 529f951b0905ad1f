package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arthUFO12/CivicProject/internal/model"
)

type redisRevision struct {
	ID        int64           `json:"id"`
	Body      json.RawMessage `json:"body"`
	CreatedAt time.Time       `json:"created_at"`
}

type redisDocumentStore struct {
	client *redis.Client
	prefix string
}

// NewRedisDocumentStore connects to redisURL and verifies the connection.
func NewRedisDocumentStore(ctx context.Context, redisURL, prefix string) (DocumentStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisDocumentStoreWithClient(client, prefix), nil
}

// NewRedisDocumentStoreWithClient creates a store from an existing Redis client.
func NewRedisDocumentStoreWithClient(client *redis.Client, prefix string) DocumentStore {
	return &redisDocumentStore{
		client: client,
		prefix: prefix,
	}
}

// key is the document hash for a mode, e.g. "editor:happy-key".
func (s *redisDocumentStore) key(mode model.Mode) string {
	return s.prefix + mode.StorageKey()
}

func (s *redisDocumentStore) revisionsKey(mode model.Mode) string {
	return s.key(mode) + ":revisions"
}

func (s *redisDocumentStore) Get(ctx context.Context, mode model.Mode) (*model.Revision, error) {
	fields, err := s.client.HGetAll(ctx, s.key(mode)).Result()
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	body, ok := fields["body"]
	if !ok {
		return nil, ErrNotFound
	}

	rev := &model.Revision{
		Mode: mode,
		Body: json.RawMessage(body),
	}
	if v, ok := fields["revision_id"]; ok {
		rev.ID, _ = strconv.ParseInt(v, 10, 64)
	}
	if v, ok := fields["updated_at"]; ok {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			rev.CreatedAt = time.UnixMilli(ms).UTC()
		}
	}
	return rev, nil
}

func (s *redisDocumentStore) Put(ctx context.Context, rev *model.Revision) error {
	if err := validBody(rev.Body); err != nil {
		return err
	}
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}

	entry, err := json.Marshal(redisRevision{ID: rev.ID, Body: rev.Body, CreatedAt: rev.CreatedAt})
	if err != nil {
		return fmt.Errorf("marshal revision: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.key(rev.Mode),
			"body", string(rev.Body),
			"revision_id", rev.ID,
			"updated_at", rev.CreatedAt.UnixMilli(),
		)
		pipe.LPush(ctx, s.revisionsKey(rev.Mode), entry)
		pipe.LTrim(ctx, s.revisionsKey(rev.Mode), 0, revisionLimit-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (s *redisDocumentStore) ListRevisions(ctx context.Context, mode model.Mode, limit int) ([]model.Revision, error) {
	if limit <= 0 || limit > revisionLimit {
		limit = revisionLimit
	}

	entries, err := s.client.LRange(ctx, s.revisionsKey(mode), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}

	revisions := make([]model.Revision, 0, len(entries))
	for _, entry := range entries {
		var r redisRevision
		if err := json.Unmarshal([]byte(entry), &r); err != nil {
			return nil, fmt.Errorf("unmarshal revision: %w", err)
		}
		revisions = append(revisions, model.Revision{
			ID:        r.ID,
			Mode:      mode,
			Body:      r.Body,
			CreatedAt: r.CreatedAt,
		})
	}
	return revisions, nil
}

func (s *redisDocumentStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *redisDocumentStore) Close() error {
	return s.client.Close()
}
