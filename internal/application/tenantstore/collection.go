package tenantstore

import (
	"context"

	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// tenantRecord restringe los tipos de entidad que pertenecen a una sede.
type tenantRecord[T any] interface {
	*T
	GetID() string
	SetID(string)
	GetSedeID() string
	SetSedeID(string)
}

// kind describe una colección: clave y etiquetas del registro de actividad.
type kind[T any] struct {
	key          string
	createAction string
	updateAction string
	deleteAction string
	createDetail func(*T) string
	updateDetail func(*T) string
	deleteDetail func(id string) string
}

func list[T any, P tenantRecord[T]](ctx context.Context, s *Store, k kind[T], sedeID string) ([]T, error) {
	all, _, err := load[[]T](ctx, s, k.key)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for i := range all {
		if P(&all[i]).GetSedeID() == sedeID {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func get[T any, P tenantRecord[T]](ctx context.Context, s *Store, k kind[T], sedeID, id string) (*T, error) {
	all, _, err := load[[]T](ctx, s, k.key)
	if err != nil {
		return nil, err
	}
	for i := range all {
		p := P(&all[i])
		if p.GetID() == id && p.GetSedeID() == sedeID {
			return &all[i], nil
		}
	}
	return nil, nil
}

// save fuerza la sede del actor, reemplaza el registro (id, sede) si existe o lo
// agrega al final, y registra la actividad. Devuelve true si fue una creación.
func save[T any, P tenantRecord[T]](ctx context.Context, s *Store, k kind[T], item P, actor entity.Actor) (bool, error) {
	item.SetSedeID(actor.SedeID)
	if item.GetID() == "" {
		item.SetID(s.newID())
	}
	var created bool
	err := update(ctx, s, k.key, func(all []T) ([]T, bool, error) {
		created = true
		for i := range all {
			p := P(&all[i])
			if p.GetID() == item.GetID() && p.GetSedeID() == actor.SedeID {
				all[i] = *item
				created = false
				return all, true, nil
			}
		}
		return append(all, *item), true, nil
	})
	if err != nil {
		return false, err
	}

	action, detail := k.updateAction, k.updateDetail(item)
	if created {
		action, detail = k.createAction, k.createDetail(item)
	}
	if err := s.logActivity(ctx, actor, action, detail); err != nil {
		return created, err
	}
	s.log.Debug().Str("key", k.key).Str("sede_id", actor.SedeID).Str("id", item.GetID()).Bool("created", created).Msg("registro guardado")
	return created, nil
}

// remove elimina sólo el registro (id, sede del actor). Un id de otra sede no
// coincide nunca: no hay cambios ni error. La actividad se registra siempre.
func remove[T any, P tenantRecord[T]](ctx context.Context, s *Store, k kind[T], id string, actor entity.Actor) (bool, error) {
	var removed bool
	err := update(ctx, s, k.key, func(all []T) ([]T, bool, error) {
		removed = false
		out := all[:0:0]
		for i := range all {
			p := P(&all[i])
			if p.GetID() == id && p.GetSedeID() == actor.SedeID {
				removed = true
				continue
			}
			out = append(out, all[i])
		}
		return out, removed, nil
	})
	if err != nil {
		return false, err
	}
	if err := s.logActivity(ctx, actor, k.deleteAction, k.deleteDetail(id)); err != nil {
		return removed, err
	}
	return removed, nil
}
