package tenantstore

import (
	"context"

	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
	"github.com/jhoicas/gestione-sindacale/internal/domain/repository"
)

// LogActivity agrega la entrada al principio del registro y recorta el registro
// global (todas las sedes) al tope configurado, descartando las más antiguas.
func (s *Store) LogActivity(ctx context.Context, e entity.ActivityLog) error {
	if e.ID == "" {
		e.ID = s.newID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now()
	}
	return update(ctx, s, repository.KeyActivityLogs, func(all []entity.ActivityLog) ([]entity.ActivityLog, bool, error) {
		next := make([]entity.ActivityLog, 0, min(len(all)+1, s.logCap))
		next = append(next, e)
		for i := 0; i < len(all) && len(next) < s.logCap; i++ {
			next = append(next, all[i])
		}
		return next, true, nil
	})
}

// ListActivity registro de la sede, más reciente primero.
func (s *Store) ListActivity(ctx context.Context, sedeID string) ([]entity.ActivityLog, error) {
	all, _, err := load[[]entity.ActivityLog](ctx, s, repository.KeyActivityLogs)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ActivityLog, 0)
	for _, l := range all {
		if l.SedeID == sedeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *Store) logActivity(ctx context.Context, actor entity.Actor, action, details string) error {
	return s.LogActivity(ctx, entity.ActivityLog{
		UserID:   actor.UserID,
		UserName: actor.Name,
		Action:   action,
		Details:  details,
		SedeID:   actor.SedeID,
	})
}
