// Package storage elige el backend de colecciones según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestione-sindacale/internal/domain/repository"
	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/memory"
	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/postgres"
	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/sqlite"
	"github.com/jhoicas/gestione-sindacale/pkg/config"
)

// Open abre el almacenamiento configurado y aplica las migraciones pendientes.
// La función devuelta libera conexiones; nunca es nil.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.CollectionStorage, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return memory.NewCollectionStorage(), func() {}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewCollectionStorage(pool), pool.Close, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.Storage.SQLitePath).Msg("almacenamiento sqlite abierto")
		return s, func() {
			if err := s.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar sqlite")
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("driver de almacenamiento no soportado: %q", cfg.Storage.Driver)
}
