// Package tenantstore es la capa de acceso a datos aislada por sede.
//
// Cada colección se guarda entera bajo una clave estable. Toda escritura es un
// ciclo leer-modificar-escribir condicionado a la revisión leída; ante un
// conflicto de revisión el ciclo completo se repite con backoff exponencial.
// Las lecturas siempre filtran por sede y las escrituras fuerzan la sede del actor.
package tenantstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"

	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/repository"
	"github.com/jhoicas/gestione-sindacale/pkg/idgen"
)

// DefaultLogCap tope global del registro de actividad.
const DefaultLogCap = 2000

// Store acceso a las colecciones de todas las sedes.
type Store struct {
	storage     repository.CollectionStorage
	now         func() time.Time
	log         zerolog.Logger
	logCap      int
	retries     uint
	newID       func() string
	newTenantID func() string
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger inyecta el logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithLogCap cambia el tope global del registro de actividad.
func WithLogCap(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.logCap = n
		}
	}
}

// WithRetryAttempts número máximo de intentos ante conflicto de revisión.
func WithRetryAttempts(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.retries = uint(n)
		}
	}
}

// WithIDGenerator reemplaza los generadores de ids de entidad y de sede.
func WithIDGenerator(entityID, tenantID func() string) Option {
	return func(s *Store) {
		if entityID != nil {
			s.newID = entityID
		}
		if tenantID != nil {
			s.newTenantID = tenantID
		}
	}
}

// New construye el Store sobre el almacenamiento dado.
func New(storage repository.CollectionStorage, opts ...Option) *Store {
	s := &Store{
		storage:     storage,
		now:         time.Now,
		log:         zerolog.Nop(),
		logCap:      DefaultLogCap,
		retries:     5,
		newID:       idgen.Short,
		newTenantID: idgen.Tenant,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now hora actual según el reloj del Store.
func (s *Store) Now() time.Time { return s.now() }

// NewID genera un id de entidad.
func (s *Store) NewID() string { return s.newID() }

// load decodifica el valor de key; una clave vacía da el valor cero de V.
// Un valor que no decodifica se trata como vacío y conserva su revisión,
// así la siguiente escritura lo reemplaza.
func load[V any](ctx context.Context, s *Store, key string) (V, int64, error) {
	var v V
	snap, err := s.storage.Read(ctx, key)
	if err != nil {
		return v, 0, fmt.Errorf("leer %s: %w", key, err)
	}
	if snap.Empty() {
		return v, snap.Revision, nil
	}
	if err := json.Unmarshal(snap.Data, &v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Int64("revision", snap.Revision).
			Msg("valor no decodificable, se trata como colección vacía")
		var zero V
		return zero, snap.Revision, nil
	}
	return v, snap.Revision, nil
}

// update ejecuta fn sobre el valor actual y escribe el resultado si fn indica cambios.
// fn puede ejecutarse varias veces: no debe tener efectos fuera de su resultado
// salvo asignaciones que se repitan en cada intento.
func update[V any](ctx context.Context, s *Store, key string, fn func(V) (V, bool, error)) error {
	attempt := 0
	op := func() (struct{}, error) {
		attempt++
		current, rev, err := load[V](ctx, s, key)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		next, changed, err := fn(current)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		if !changed {
			return struct{}{}, nil
		}
		data, err := json.Marshal(next)
		if err != nil {
			return struct{}{}, backoff.Permanent(fmt.Errorf("codificar %s: %w", key, err))
		}
		if _, err := s.storage.Write(ctx, key, data, rev); err != nil {
			if errors.Is(err, domain.ErrRevisionConflict) {
				s.log.Debug().Str("key", key).Int("attempt", attempt).Msg("conflicto de revisión, reintentando")
				return struct{}{}, err
			}
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Millisecond
	b.MaxInterval = 200 * time.Millisecond

	_, err := backoff.Retry(ctx, op, backoff.WithBackOff(b), backoff.WithMaxTries(s.retries))
	if err != nil {
		if errors.Is(err, domain.ErrRevisionConflict) {
			s.log.Warn().Str("key", key).Int("attempts", attempt).Msg("conflicto de revisión persistente")
		}
		return err
	}
	return nil
}
