// Package analytics contiene el resumen del dashboard de la sede.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/application/usecase"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

const dashboardLatestActivity = 10 // entradas del widget de actividad reciente

// DashboardUseCase genera el resumen de la sede.
type DashboardUseCase struct {
	store   *tenantstore.Store
	scanner usecase.DeadlineScanner
	loc     *time.Location
	log     zerolog.Logger
}

// NewDashboardUseCase construye el caso de uso. scanner puede ser nil.
func NewDashboardUseCase(store *tenantstore.Store, scanner usecase.DeadlineScanner, loc *time.Location, log zerolog.Logger) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{store: store, scanner: scanner, loc: loc, log: log}
}

// GetSummary construye el DashboardSummaryDTO de la sede del actor.
//
// Iscritti, pratiche y actividad se cargan en paralelo; después se ejecuta el
// escaneo de vencimientos y se cuentan los avisos no leídos ya actualizados.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, actor entity.Actor) (*dto.DashboardSummaryDTO, error) {
	type membersResult struct {
		items []entity.Member
		err   error
	}
	type casesResult struct {
		items []entity.Case
		err   error
	}
	type activityResult struct {
		items []entity.ActivityLog
		err   error
	}

	membersCh := make(chan membersResult, 1)
	casesCh := make(chan casesResult, 1)
	activityCh := make(chan activityResult, 1)

	go func() {
		items, err := uc.store.ListMembers(ctx, actor.SedeID)
		membersCh <- membersResult{items, err}
	}()
	go func() {
		items, err := uc.store.ListCases(ctx, actor.SedeID)
		casesCh <- casesResult{items, err}
	}()
	go func() {
		if !entity.CanAudit(actor.Role) {
			activityCh <- activityResult{}
			return
		}
		items, err := uc.store.ListActivity(ctx, actor.SedeID)
		activityCh <- activityResult{items, err}
	}()

	members := <-membersCh
	cases := <-casesCh
	activity := <-activityCh

	if members.err != nil {
		return nil, fmt.Errorf("dashboard: iscritti: %w", members.err)
	}
	if cases.err != nil {
		return nil, fmt.Errorf("dashboard: pratiche: %w", cases.err)
	}
	if activity.err != nil {
		return nil, fmt.Errorf("dashboard: attività: %w", activity.err)
	}

	now := uc.store.Now()
	if uc.scanner != nil {
		if _, err := uc.scanner.ScanCases(ctx, actor.SedeID, cases.items, now); err != nil {
			uc.log.Warn().Err(err).Str("sede_id", actor.SedeID).Msg("escaneo de vencimientos en dashboard")
		}
	}
	notifications, err := uc.store.ListNotifications(ctx, actor.SedeID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: notifiche: %w", err)
	}

	out := &dto.DashboardSummaryDTO{
		TotalMembers: len(members.items),
		DateLabel:    now.In(uc.loc).Format("02/01/2006"),
	}
	for _, m := range members.items {
		if m.DuesActive {
			out.ActiveDuesMembers++
		}
	}

	byStatus := make(map[string]int, len(entity.CaseStatuses))
	for i := range cases.items {
		c := &cases.items[i]
		byStatus[c.Status]++
		if c.IsOpen() {
			out.OpenCases++
		}
		if c.Status == entity.CaseStatusUrgent {
			out.UrgentCases++
		}
	}
	out.ByStatus = make([]dto.StatusCountDTO, 0, len(entity.CaseStatuses))
	for _, st := range entity.CaseStatuses {
		out.ByStatus = append(out.ByStatus, dto.StatusCountDTO{Status: st, Count: byStatus[st]})
	}

	for _, n := range notifications {
		if !n.IsRead {
			out.UnreadNotifications++
		}
	}

	if len(activity.items) > dashboardLatestActivity {
		activity.items = activity.items[:dashboardLatestActivity]
	}
	out.LatestActivity = activity.items

	office, err := uc.store.GetOffice(ctx, actor.SedeID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: sede: %w", err)
	}
	if office != nil {
		out.SedeName = office.Name
	}
	return out, nil
}
