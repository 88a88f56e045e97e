package usecase

import (
	"context"

	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

// NotificationUseCase avisos de la sede.
type NotificationUseCase struct {
	store *tenantstore.Store
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(store *tenantstore.Store) *NotificationUseCase {
	return &NotificationUseCase{store: store}
}

// List avisos de la sede; unreadOnly deja sólo los no leídos.
func (uc *NotificationUseCase) List(ctx context.Context, sedeID string, unreadOnly bool) ([]entity.Notification, error) {
	all, err := uc.store.ListNotifications(ctx, sedeID)
	if err != nil || !unreadOnly {
		return all, err
	}
	out := make([]entity.Notification, 0)
	for _, n := range all {
		if !n.IsRead {
			out = append(out, n)
		}
	}
	return out, nil
}

// MarkAsRead marca un aviso de la sede del actor; ErrNotFound si no existe ahí.
func (uc *NotificationUseCase) MarkAsRead(ctx context.Context, actor entity.Actor, id string) error {
	found, err := uc.store.MarkAsRead(ctx, id, actor)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllAsRead marca todos los avisos de la sede.
func (uc *NotificationUseCase) MarkAllAsRead(ctx context.Context, actor entity.Actor) (int, error) {
	return uc.store.MarkAllAsRead(ctx, actor)
}
