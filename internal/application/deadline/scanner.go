// Package deadline ejecuta el escaneo de vencimientos de una sede: deriva los
// recordatorios y los inserta de forma idempotente.
package deadline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	domaindeadline "github.com/jhoicas/gestione-sindacale/internal/domain/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// Alerter recibe los recordatorios danger insertados por primera vez.
type Alerter interface {
	AlertDeadline(ctx context.Context, sedeID string, c entity.Case, n entity.Notification)
}

// Result resumen de un escaneo.
type Result struct {
	Derived  int `json:"derived"`
	Inserted int `json:"inserted"`
}

// Scanner escáner de vencimientos.
type Scanner struct {
	store   *tenantstore.Store
	policy  domaindeadline.Policy
	alerter Alerter
	log     zerolog.Logger
}

// NewScanner construye el escáner. alerter puede ser nil.
func NewScanner(store *tenantstore.Store, policy domaindeadline.Policy, alerter Alerter, log zerolog.Logger) *Scanner {
	return &Scanner{store: store, policy: policy, alerter: alerter, log: log}
}

// Scan deriva los recordatorios de la sede y los inserta. Repetirlo el mismo
// día no crea duplicados: el id incluye la fecha.
func (s *Scanner) Scan(ctx context.Context, sedeID string) (Result, error) {
	cases, err := s.store.ListCases(ctx, sedeID)
	if err != nil {
		return Result{}, fmt.Errorf("escaneo de vencimientos: %w", err)
	}
	return s.ScanCases(ctx, sedeID, cases, s.store.Now())
}

// ScanCases variante con la lista de pratiche ya cargada.
func (s *Scanner) ScanCases(ctx context.Context, sedeID string, cases []entity.Case, now time.Time) (Result, error) {
	derived := domaindeadline.Derive(cases, sedeID, now, s.policy)
	res := Result{Derived: len(derived)}
	if len(derived) == 0 {
		return res, nil
	}

	byNotification := make(map[string]entity.Case, len(derived))
	today := now.In(s.location())
	for _, c := range cases {
		byNotification[domaindeadline.NotificationID(c.ID, today)] = c
	}

	for _, n := range derived {
		inserted, err := s.store.SaveNotification(ctx, n)
		if err != nil {
			return res, fmt.Errorf("guardar recordatorio %s: %w", n.ID, err)
		}
		if !inserted {
			continue
		}
		res.Inserted++
		if n.Severity == entity.SeverityDanger && s.alerter != nil {
			s.alerter.AlertDeadline(ctx, sedeID, byNotification[n.ID], n)
		}
	}
	if res.Inserted > 0 {
		s.log.Info().Str("sede_id", sedeID).Int("derived", res.Derived).Int("inserted", res.Inserted).Msg("recordatorios de vencimiento")
	}
	return res, nil
}

func (s *Scanner) location() *time.Location {
	if s.policy.Location == nil {
		return time.UTC
	}
	return s.policy.Location
}
