// Package memory implementa el almacenamiento de colecciones en memoria del proceso.
// Se usa en tests y con STORAGE_DRIVER=memory.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/repository"
)

var _ repository.CollectionStorage = (*CollectionStorage)(nil)

type entry struct {
	data     []byte
	revision int64
}

// CollectionStorage mapa clave -> valor JSON con revisión.
type CollectionStorage struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCollectionStorage crea un almacenamiento vacío.
func NewCollectionStorage() *CollectionStorage {
	return &CollectionStorage{entries: make(map[string]entry)}
}

// Read devuelve una copia del valor; la clave ausente o un null JSON dan un snapshot sin datos.
func (s *CollectionStorage) Read(_ context.Context, key string) (repository.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return repository.Snapshot{}, nil
	}
	snap := repository.Snapshot{Revision: e.revision}
	if !isNull(e.data) {
		snap.Data = bytes.Clone(e.data)
	}
	return snap, nil
}

// Write reemplaza el valor si la revisión coincide.
func (s *CollectionStorage) Write(_ context.Context, key string, data []byte, expected int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.entries[key].revision
	if current != expected {
		return 0, domain.ErrRevisionConflict
	}
	next := current + 1
	s.entries[key] = entry{data: bytes.Clone(data), revision: next}
	return next, nil
}

// Keys devuelve las claves presentes (diagnóstico y tests).
func (s *CollectionStorage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

func isNull(b []byte) bool {
	return len(bytes.TrimSpace(b)) == 0 || bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}
