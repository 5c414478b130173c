// Package store persists arena snapshots — every competitor's StateDoc,
// keyed by arena and competitor id — to Postgres, so a caller can resume
// a long-running arena across process restarts.
package store

import (
	"context"
	"embed"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"elote-go/competitor"
)

//go:embed schema.sql
var schema embed.FS

// PostgresStore wraps a pgx connection pool with the arena snapshot
// operations. It is safe for concurrent use; the pool handles its own
// connection lifecycle.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore opens a connection pool against dsn. It does not run
// migrations; call Migrate once at startup.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the pool can reach the database.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies the embedded schema. It is idempotent.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, string(sqlBytes))
	return err
}

// SaveArena upserts one row per competitor in docs, keyed by
// (arenaID, competitor id).
func (s *PostgresStore) SaveArena(ctx context.Context, arenaID string, docs map[string]competitor.StateDoc) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for competitorID, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO arena_competitors (arena_id, competitor_id, kind, state_doc, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (arena_id, competitor_id) DO UPDATE
			  SET kind = EXCLUDED.kind,
			      state_doc = EXCLUDED.state_doc,
			      updated_at = now()
		`, arenaID, competitorID, string(doc.Type), raw); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// LoadArena fetches every competitor snapshot recorded for arenaID,
// keyed by competitor id.
func (s *PostgresStore) LoadArena(ctx context.Context, arenaID string) (map[string]competitor.StateDoc, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT competitor_id, state_doc
		  FROM arena_competitors
		 WHERE arena_id = $1
	`, arenaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]competitor.StateDoc)
	for rows.Next() {
		var competitorID string
		var raw []byte
		if err := rows.Scan(&competitorID, &raw); err != nil {
			return nil, err
		}
		var doc competitor.StateDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out[competitorID] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteArena drops every snapshot recorded for arenaID.
func (s *PostgresStore) DeleteArena(ctx context.Context, arenaID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM arena_competitors WHERE arena_id = $1`, arenaID)
	return err
}
