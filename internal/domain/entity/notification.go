package entity

import "time"

// Severidades de notificación.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

// Vistas destino de una notificación.
const (
	ViewDashboard = "dashboard"
	ViewMembers   = "members"
	ViewCases     = "cases"
	ViewDocuments = "documents"
	ViewCalendar  = "calendar"
	ViewLog       = "log"
)

// Notification aviso para los operadores de una sede.
type Notification struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Severity   string    `json:"type"`
	Date       time.Time `json:"date"`
	IsRead     bool      `json:"isRead"`
	TargetView string    `json:"targetView"`
	SedeID     string    `json:"sedeId"`
}
