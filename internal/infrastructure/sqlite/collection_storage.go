// Package sqlite implementa el almacenamiento de colecciones en un archivo SQLite
// (GORM + driver puro Go), pensado para la CLI y despliegues de un solo nodo.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/repository"
)

var _ repository.CollectionStorage = (*CollectionStorage)(nil)

// collectionRow fila de la tabla collections.
type collectionRow struct {
	Name      string         `gorm:"column:name;primaryKey"`
	Value     datatypes.JSON `gorm:"column:value;not null"`
	Revision  int64          `gorm:"column:revision;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (collectionRow) TableName() string { return "collections" }

// CollectionStorage implementa repository.CollectionStorage con GORM.
type CollectionStorage struct {
	db *gorm.DB
}

// Open abre (o crea) el archivo y migra el esquema.
func Open(path string) (*CollectionStorage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtener conexión sqlite: %w", err)
	}
	// SQLite admite un solo escritor; una conexión evita SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrar sqlite: %w", err)
	}
	return &CollectionStorage{db: db}, nil
}

// Close cierra la conexión subyacente.
func (s *CollectionStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Read devuelve el valor y la revisión de la clave.
func (s *CollectionStorage) Read(ctx context.Context, key string) (repository.Snapshot, error) {
	var row collectionRow
	err := s.db.WithContext(ctx).Where("name = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.Snapshot{}, nil
	}
	if err != nil {
		return repository.Snapshot{}, fmt.Errorf("leer colección %s: %w", key, err)
	}
	snap := repository.Snapshot{Revision: row.Revision}
	if string(row.Value) != "null" {
		snap.Data = []byte(row.Value)
	}
	return snap, nil
}

// Write inserta (expected 0) o actualiza condicionado a la revisión.
func (s *CollectionStorage) Write(ctx context.Context, key string, data []byte, expected int64) (int64, error) {
	now := time.Now().UTC()
	if expected == 0 {
		res := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&collectionRow{Name: key, Value: datatypes.JSON(data), Revision: 1, UpdatedAt: now})
		if res.Error != nil {
			return 0, fmt.Errorf("insertar colección %s: %w", key, res.Error)
		}
		if res.RowsAffected == 0 {
			return 0, domain.ErrRevisionConflict
		}
		return 1, nil
	}

	res := s.db.WithContext(ctx).
		Model(&collectionRow{}).
		Where("name = ? AND revision = ?", key, expected).
		Updates(map[string]any{
			"value":      datatypes.JSON(data),
			"revision":   expected + 1,
			"updated_at": now,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("actualizar colección %s: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, domain.ErrRevisionConflict
	}
	return expected + 1, nil
}
