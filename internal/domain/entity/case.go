package entity

import (
	"fmt"
	"time"
)

// Estados de una pratica. Transiciones libres: cualquier estado a cualquier estado.
const (
	CaseStatusNew               = "new"
	CaseStatusInProgress        = "in-progress"
	CaseStatusAwaitingDocuments = "awaiting-documents"
	CaseStatusUnderReview       = "under-review"
	CaseStatusCompleted         = "completed"
	CaseStatusArchived          = "archived"
	CaseStatusUrgent            = "urgent"
)

// CaseStatuses en el orden del tablero de workflow.
var CaseStatuses = []string{
	CaseStatusNew,
	CaseStatusInProgress,
	CaseStatusAwaitingDocuments,
	CaseStatusUnderReview,
	CaseStatusCompleted,
	CaseStatusArchived,
	CaseStatusUrgent,
}

// IsValidCaseStatus reporta si s es un estado conocido.
func IsValidCaseStatus(s string) bool {
	for _, st := range CaseStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Prioridades.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DateLayout formato de las fechas de calendario persistidas.
const DateLayout = "2006-01-02"

// CaseFile archivo adjunto (contenido en base64).
type CaseFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       string    `json:"size"`
	Data       string    `json:"data"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// TimelineEvent entrada del historial de una pratica; solo se agregan.
type TimelineEvent struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	User    string    `json:"user"`
	Content string    `json:"content"`
}

// Case pratica legal o administrativa vinculada a un iscritto (MemberID).
// Files tiene cero o un elemento.
type Case struct {
	ID           string          `json:"id"`
	Title        string          `json:"titolo"`
	Description  string          `json:"descrizione"`
	MemberID     string          `json:"membroId"`
	AssignedTo   string          `json:"assegnatoA,omitempty"`
	OpenedOn     string          `json:"dataApertura"`
	DueDate      string          `json:"scadenza"`
	Status       string          `json:"status"`
	Priority     string          `json:"priorita"`
	Files        []CaseFile      `json:"files"`
	Timeline     []TimelineEvent `json:"timeline"`
	SedeID       string          `json:"sedeId"`
	LastModified *time.Time      `json:"ultimaModifica,omitempty"`
}

func (c *Case) GetID() string           { return c.ID }
func (c *Case) SetID(id string)         { c.ID = id }
func (c *Case) GetSedeID() string       { return c.SedeID }
func (c *Case) SetSedeID(sedeID string) { c.SedeID = sedeID }

// IsOpen una pratica cuenta como abierta mientras no esté completada.
func (c *Case) IsOpen() bool {
	return c.Status != CaseStatusCompleted
}

// DueIn interpreta la fecha de vencimiento como día de calendario en loc.
func (c *Case) DueIn(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, c.DueDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("scadenza %q: %w", c.DueDate, err)
	}
	return t, nil
}

// File devuelve el adjunto, si existe.
func (c *Case) File() *CaseFile {
	if len(c.Files) == 0 {
		return nil
	}
	return &c.Files[0]
}
