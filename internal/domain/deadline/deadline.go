// Package deadline deriva los recordatorios de vencimiento de las pratiche.
//
// La derivación es pura: no lee ni escribe almacenamiento. La inserción
// idempotente de los recordatorios la hace el escáner de la capa de aplicación.
package deadline

import (
	"fmt"
	"time"

	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
)

const (
	// IDPrefix prefijo del id determinista de los recordatorios.
	IDPrefix = "deadline-"
	// Title título de los recordatorios.
	Title = "Scadenza Pratica"
)

// Policy ventana de aviso en días de calendario.
type Policy struct {
	Window       int // días hacia adelante que generan aviso (incluido)
	DangerWithin int // hasta este número de días la severidad es danger
	Location     *time.Location
}

// DefaultPolicy siete días de ventana, danger hasta dos días, en UTC.
func DefaultPolicy() Policy {
	return Policy{Window: 7, DangerWithin: 2, Location: time.UTC}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// NotificationID id determinista: uno por pratica y por día de calendario.
func NotificationID(caseID string, today time.Time) string {
	return IDPrefix + caseID + "-" + today.Format(entity.DateLayout)
}

// DaysUntil días de calendario entre hoy y el vencimiento, ambos en loc.
// Un vencimiento hoy vale 0; uno pasado es negativo.
func DaysUntil(due, now time.Time, loc *time.Location) int {
	dy, dm, dd := due.In(loc).Date()
	ny, nm, nd := now.In(loc).Date()
	d := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	n := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}

// Severity severidad para un vencimiento a days días.
func (p Policy) Severity(days int) string {
	if days <= p.DangerWithin {
		return entity.SeverityDanger
	}
	return entity.SeverityWarning
}

// Derive genera un recordatorio por cada pratica de sedeID que vence dentro
// de la ventana [0, Window]. Las pratiche de otras sedes, las vencidas, las
// lejanas y las de fecha ilegible no producen nada.
func Derive(cases []entity.Case, sedeID string, now time.Time, p Policy) []entity.Notification {
	loc := p.location()
	today := now.In(loc)
	var out []entity.Notification
	for i := range cases {
		c := &cases[i]
		if c.SedeID != sedeID {
			continue
		}
		due, err := c.DueIn(loc)
		if err != nil {
			continue
		}
		days := DaysUntil(due, today, loc)
		if days < 0 || days > p.Window {
			continue
		}
		out = append(out, entity.Notification{
			ID:         NotificationID(c.ID, today),
			Title:      Title,
			Message:    fmt.Sprintf(`La pratica "%s" scade tra %d giorni.`, c.Title, days),
			Severity:   p.Severity(days),
			Date:       now,
			TargetView: entity.ViewCases,
			SedeID:     sedeID,
		})
	}
	return out
}
