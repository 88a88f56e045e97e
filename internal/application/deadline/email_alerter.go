package deadline

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestione-sindacale/internal/application/mail"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

const alertTimeout = 30 * time.Second

// EmailAlerter envía el correo de vencimiento a owner y admin de la sede.
// El envío corre en segundo plano: el escaneo no espera al proveedor y los
// fallos solo se registran.
type EmailAlerter struct {
	store *tenantstore.Store
	mail  *mail.Service
	log   zerolog.Logger
	wg    sync.WaitGroup
}

// NewEmailAlerter construye el alerter.
func NewEmailAlerter(store *tenantstore.Store, mailer *mail.Service, log zerolog.Logger) *EmailAlerter {
	return &EmailAlerter{store: store, mail: mailer, log: log}
}

// AlertDeadline implementa Alerter. Vuelve de inmediato; el contexto de la
// petición solo aporta sus valores, no su cancelación.
func (a *EmailAlerter) AlertDeadline(ctx context.Context, sedeID string, c entity.Case, _ entity.Notification) {
	bg := context.WithoutCancel(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		sendCtx, cancel := context.WithTimeout(bg, alertTimeout)
		defer cancel()
		a.send(sendCtx, sedeID, c)
	}()
}

// Wait bloquea hasta que terminen los envíos en curso.
func (a *EmailAlerter) Wait() {
	a.wg.Wait()
}

func (a *EmailAlerter) send(ctx context.Context, sedeID string, c entity.Case) {
	users, err := a.store.ListUsers(ctx, sedeID)
	if err != nil {
		a.log.Error().Err(err).Str("sede_id", sedeID).Msg("destinatarios de aviso de vencimiento")
		return
	}
	for _, u := range users {
		if !entity.CanAudit(u.Role) {
			continue
		}
		res := a.mail.SendDeadlineAlert(ctx, []string{u.Email}, u.DisplayName, c.Title, c.DueDate, c.Priority)
		if !res.Success {
			a.log.Warn().Str("sede_id", sedeID).Str("case_id", c.ID).Str("error", res.Error).Msg("aviso de vencimiento no enviado")
		}
	}
}
