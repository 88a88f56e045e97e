package entity

import (
	"strings"
	"time"
)

// Roles del iscritto.
const (
	MemberRoleEmployee = "employee"
	MemberRoleManager  = "manager"
)

// Estados del iscritto.
const (
	MemberStatusActive    = "active"
	MemberStatusSuspended = "suspended"
)

// MemberHistoryEntry evento del historial de un iscritto.
type MemberHistoryEntry struct {
	Date   time.Time `json:"date"`
	Action string    `json:"action"`
}

// Member iscritto al sindacato; pertenece a exactamente una sede.
// Las fechas de calendario se guardan como "2006-01-02".
type Member struct {
	ID                 string               `json:"id"`
	FirstName          string               `json:"nome"`
	LastName           string               `json:"cognome"`
	BirthDate          string               `json:"dataNascita"`
	CollaborationStart string               `json:"dataInizioCollaborazione"`
	TaxID              string               `json:"codiceFiscale"`
	Email              string               `json:"email"`
	Phone              string               `json:"telefono"`
	Role               string               `json:"ruolo"`
	EnrollmentDate     string               `json:"dataIscrizione"`
	DuesActive         bool                 `json:"quotaAttiva"`
	Status             string               `json:"status"`
	SedeID             string               `json:"sedeId"`
	Note               string               `json:"note,omitempty"`
	History            []MemberHistoryEntry `json:"storico,omitempty"`
}

func (m *Member) GetID() string           { return m.ID }
func (m *Member) SetID(id string)         { m.ID = id }
func (m *Member) GetSedeID() string       { return m.SedeID }
func (m *Member) SetSedeID(sedeID string) { m.SedeID = sedeID }

// FullName "Cognome Nome", como en los listados.
func (m *Member) FullName() string {
	return strings.TrimSpace(m.LastName + " " + m.FirstName)
}
