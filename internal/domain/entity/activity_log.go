package entity

import "time"

// Etiquetas de acción del registro de actividad (se muestran a los operadores).
const (
	ActionRegister = "Registrazione"
	ActionLogin    = "Login"
	ActionLogout   = "Logout"

	ActionMemberCreate = "Nuovo Iscritto"
	ActionMemberUpdate = "Modifica Iscritto"
	ActionMemberDelete = "Eliminazione Iscritto"

	ActionCaseCreate = "Nuova Pratica"
	ActionCaseUpdate = "Aggiornamento Pratica"
	ActionCaseDelete = "Eliminazione Pratica"

	ActionEventCreate = "Nuovo Evento"
	ActionEventUpdate = "Modifica Evento"
	ActionEventDelete = "Eliminazione Evento"

	ActionDocumentCreate = "Archiviazione Documento"
	ActionDocumentUpdate = "Modifica Documento"
	ActionDocumentDelete = "Eliminazione Documento"
)

// ActivityLog registro inmutable de una operación de escritura.
type ActivityLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	SedeID    string    `json:"sedeId"`
}
