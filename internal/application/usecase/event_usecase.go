package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// EventUseCase casos de uso del calendario.
type EventUseCase struct {
	store *tenantstore.Store
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(store *tenantstore.Store) *EventUseCase {
	return &EventUseCase{store: store}
}

// List eventos de la sede ordenados por fecha. from y to (YYYY-MM-DD,
// incluidos) son opcionales.
func (uc *EventUseCase) List(ctx context.Context, sedeID, from, to string) ([]entity.CalendarEvent, error) {
	all, err := uc.store.ListEvents(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.CalendarEvent, 0, len(all))
	for _, e := range all {
		day := e.Date
		if len(day) > len(entity.DateLayout) {
			day = day[:len(entity.DateLayout)]
		}
		if from != "" && day < from {
			continue
		}
		if to != "" && day > to {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// Create pianifica un evento; tipo scheduled y categoría other por defecto.
func (uc *EventUseCase) Create(ctx context.Context, actor entity.Actor, in entity.CalendarEvent) (*entity.CalendarEvent, error) {
	if in.Type == "" {
		in.Type = entity.EventTypeScheduled
	}
	if in.Category == "" {
		in.Category = entity.EventCategoryOther
	}
	if err := entity.ValidateEvent(&in); err != nil {
		return nil, err
	}
	in.ID = ""
	if _, err := uc.store.SaveEvent(ctx, &in, actor); err != nil {
		return nil, err
	}
	return &in, nil
}

// Update reemplaza el evento id de la sede.
func (uc *EventUseCase) Update(ctx context.Context, actor entity.Actor, id string, in entity.CalendarEvent) (*entity.CalendarEvent, error) {
	existing, err := notFoundIfNil(uc.store.GetEvent(ctx, actor.SedeID, id))
	if err != nil {
		return nil, err
	}
	if in.Type == "" {
		in.Type = existing.Type
	}
	if in.Category == "" {
		in.Category = existing.Category
	}
	if err := entity.ValidateEvent(&in); err != nil {
		return nil, err
	}
	in.ID = existing.ID
	if _, err := uc.store.SaveEvent(ctx, &in, actor); err != nil {
		return nil, err
	}
	return &in, nil
}

// Delete elimina el evento. Un id de otra sede devuelve ErrNotFound.
func (uc *EventUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	removed, err := uc.store.DeleteEvent(ctx, id, actor)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}
