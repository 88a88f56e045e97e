package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/repository"
)

var _ repository.CollectionStorage = (*CollectionStorage)(nil)

// CollectionStorage implementa repository.CollectionStorage sobre la tabla collections.
type CollectionStorage struct {
	pool *pgxpool.Pool
}

// NewCollectionStorage construye el almacenamiento con el pool.
func NewCollectionStorage(pool *pgxpool.Pool) *CollectionStorage {
	return &CollectionStorage{pool: pool}
}

// Read devuelve el valor y la revisión; sin fila el snapshot es vacío.
func (s *CollectionStorage) Read(ctx context.Context, key string) (repository.Snapshot, error) {
	var (
		value    string
		revision int64
	)
	err := s.pool.QueryRow(ctx,
		`SELECT value::text, revision FROM collections WHERE name = $1`, key,
	).Scan(&value, &revision)
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.Snapshot{}, nil
	}
	if err != nil {
		return repository.Snapshot{}, fmt.Errorf("leer colección %s: %w", key, mapPostgresError(err))
	}
	snap := repository.Snapshot{Revision: revision}
	if value != "null" {
		snap.Data = []byte(value)
	}
	return snap, nil
}

// Write inserta (expected 0) o actualiza condicionado a la revisión.
func (s *CollectionStorage) Write(ctx context.Context, key string, data []byte, expected int64) (int64, error) {
	if expected == 0 {
		tag, err := s.pool.Exec(ctx, `
			INSERT INTO collections (name, value, revision, updated_at)
			VALUES ($1, $2::jsonb, 1, now())
			ON CONFLICT (name) DO NOTHING`, key, string(data))
		if err != nil {
			return 0, fmt.Errorf("insertar colección %s: %w", key, mapPostgresError(err))
		}
		if tag.RowsAffected() == 0 {
			return 0, domain.ErrRevisionConflict
		}
		return 1, nil
	}

	var next int64
	err := s.pool.QueryRow(ctx, `
		UPDATE collections
		SET value = $2::jsonb, revision = revision + 1, updated_at = now()
		WHERE name = $1 AND revision = $3
		RETURNING revision`, key, string(data), expected,
	).Scan(&next)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrRevisionConflict
	}
	if err != nil {
		return 0, fmt.Errorf("actualizar colección %s: %w", key, mapPostgresError(err))
	}
	return next, nil
}
