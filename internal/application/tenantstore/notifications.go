package tenantstore

import (
	"context"

	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
	"github.com/jhoicas/gestione-sindacale/internal/domain/repository"
)

// ListNotifications avisos de la sede, más reciente primero.
func (s *Store) ListNotifications(ctx context.Context, sedeID string) ([]entity.Notification, error) {
	all, _, err := load[[]entity.Notification](ctx, s, repository.KeyNotifications)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Notification, 0)
	for _, n := range all {
		if n.SedeID == sedeID {
			out = append(out, n)
		}
	}
	return out, nil
}

// SaveNotification inserta el aviso sólo si ningún aviso (de cualquier sede)
// tiene ya ese id. Devuelve true si lo insertó.
func (s *Store) SaveNotification(ctx context.Context, n entity.Notification) (bool, error) {
	if n.ID == "" {
		n.ID = s.newID()
	}
	if n.Date.IsZero() {
		n.Date = s.now()
	}
	var inserted bool
	err := update(ctx, s, repository.KeyNotifications, func(all []entity.Notification) ([]entity.Notification, bool, error) {
		inserted = false
		for _, existing := range all {
			if existing.ID == n.ID {
				return all, false, nil
			}
		}
		inserted = true
		return append([]entity.Notification{n}, all...), true, nil
	})
	return inserted, err
}

// MarkAsRead marca como leído el aviso id de la sede del actor.
// Un id de otra sede no se toca. Devuelve false si no se encontró.
func (s *Store) MarkAsRead(ctx context.Context, id string, actor entity.Actor) (bool, error) {
	var found bool
	err := update(ctx, s, repository.KeyNotifications, func(all []entity.Notification) ([]entity.Notification, bool, error) {
		found = false
		for i := range all {
			if all[i].ID == id && all[i].SedeID == actor.SedeID {
				found = true
				if all[i].IsRead {
					return all, false, nil
				}
				all[i].IsRead = true
				return all, true, nil
			}
		}
		return all, false, nil
	})
	return found, err
}

// MarkAllAsRead marca todos los avisos de la sede; devuelve cuántos cambiaron.
func (s *Store) MarkAllAsRead(ctx context.Context, actor entity.Actor) (int, error) {
	var changed int
	err := update(ctx, s, repository.KeyNotifications, func(all []entity.Notification) ([]entity.Notification, bool, error) {
		changed = 0
		for i := range all {
			if all[i].SedeID == actor.SedeID && !all[i].IsRead {
				all[i].IsRead = true
				changed++
			}
		}
		return all, changed > 0, nil
	})
	return changed, err
}
