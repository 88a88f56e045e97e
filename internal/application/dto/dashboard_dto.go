package dto

import "github.com/jhoicas/gestione-sindacale/internal/domain/entity"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalMembers      int `json:"totaleIscritti"`
	ActiveDuesMembers int `json:"iscrittiQuotaAttiva"`
	OpenCases         int `json:"praticheAperte"` // status distinto de completed
	UrgentCases       int `json:"praticheUrgenti"`

	// Conteo por estado, en el orden de entity.CaseStatuses.
	ByStatus []StatusCountDTO `json:"perStato"`

	UnreadNotifications int `json:"notificheNonLette"`

	// Sólo owner y admin; vacío para el resto.
	LatestActivity []entity.ActivityLog `json:"ultimeAttivita,omitempty"`

	SedeName  string `json:"sede"`
	DateLabel string `json:"data"` // ej: "17/10/2026"
}

// StatusCountDTO pratiche en un estado.
type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
