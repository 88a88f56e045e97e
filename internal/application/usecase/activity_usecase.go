package usecase

import (
	"context"

	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// ActivityListResponse página del registro de actividad.
type ActivityListResponse struct {
	Items []entity.ActivityLog `json:"items"`
	Page  dto.PageResponse     `json:"page"`
}

// ActivityUseCase consulta del registro de actividad (owner y admin).
type ActivityUseCase struct {
	store *tenantstore.Store
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(store *tenantstore.Store) *ActivityUseCase {
	return &ActivityUseCase{store: store}
}

// List registro de la sede del actor, más reciente primero.
func (uc *ActivityUseCase) List(ctx context.Context, actor entity.Actor, page dto.PageRequest) (*ActivityListResponse, error) {
	if !entity.CanAudit(actor.Role) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	all, err := uc.store.ListActivity(ctx, actor.SedeID)
	if err != nil {
		return nil, err
	}
	from, to := page.Bounds(len(all))
	return &ActivityListResponse{
		Items: all[from:to],
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(all)},
	}, nil
}
