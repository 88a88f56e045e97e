package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/gestione-sindacale/internal/domain"
)

// Mensajes de validación mostrados en línea junto al campo.
const (
	msgRequired      = "Campo obbligatorio"
	msgInvalidFormat = "Formato non valido"
	msgInvalidEmail  = "Email non valida"
	msgInvalidDate   = "Data non valida"
	msgInvalidValue  = "Valore non ammesso"
)

var (
	taxIDPattern = regexp.MustCompile(`^[A-Z]{6}[0-9]{2}[A-Z][0-9]{2}[A-Z][0-9]{3}[A-Z]$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsValidEmail aplica el patrón de email de los formularios.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizeTaxID codice fiscale en mayúsculas y sin espacios.
func NormalizeTaxID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func isDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidateMember verifica los campos obligatorios y los formatos del iscritto.
// Normaliza el codice fiscale antes de validarlo.
func ValidateMember(m *Member) error {
	v := domain.NewValidationError()
	m.TaxID = NormalizeTaxID(m.TaxID)

	if strings.TrimSpace(m.FirstName) == "" {
		v.Add("nome", msgRequired)
	}
	if strings.TrimSpace(m.LastName) == "" {
		v.Add("cognome", msgRequired)
	}
	switch {
	case m.BirthDate == "":
		v.Add("dataNascita", msgRequired)
	case !isDate(m.BirthDate):
		v.Add("dataNascita", msgInvalidDate)
	}
	switch {
	case m.CollaborationStart == "":
		v.Add("dataInizioCollaborazione", msgRequired)
	case !isDate(m.CollaborationStart):
		v.Add("dataInizioCollaborazione", msgInvalidDate)
	}
	if strings.TrimSpace(m.Phone) == "" {
		v.Add("telefono", msgRequired)
	}
	switch {
	case m.TaxID == "":
		v.Add("codiceFiscale", msgRequired)
	case !taxIDPattern.MatchString(m.TaxID):
		v.Add("codiceFiscale", msgInvalidFormat)
	}
	if m.Email != "" && !IsValidEmail(m.Email) {
		v.Add("email", msgInvalidEmail)
	}
	if m.Role != "" && m.Role != MemberRoleEmployee && m.Role != MemberRoleManager {
		v.Add("ruolo", msgInvalidValue)
	}
	if m.Status != "" && m.Status != MemberStatusActive && m.Status != MemberStatusSuspended {
		v.Add("status", msgInvalidValue)
	}
	return v.OrNil()
}

// ValidateCase verifica título, iscritto, vencimiento, estado y prioridad.
func ValidateCase(c *Case) error {
	v := domain.NewValidationError()
	if strings.TrimSpace(c.Title) == "" {
		v.Add("titolo", msgRequired)
	}
	if strings.TrimSpace(c.MemberID) == "" {
		v.Add("membroId", msgRequired)
	}
	switch {
	case c.DueDate == "":
		v.Add("scadenza", msgRequired)
	case !isDate(c.DueDate):
		v.Add("scadenza", msgInvalidDate)
	}
	if c.Status != "" && !IsValidCaseStatus(c.Status) {
		v.Add("status", msgInvalidValue)
	}
	switch c.Priority {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
	default:
		v.Add("priorita", msgInvalidValue)
	}
	if len(c.Files) > 1 {
		v.Add("files", "È consentito un solo allegato")
	}
	return v.OrNil()
}

// ValidateEvent verifica título, fecha y tipo del evento.
func ValidateEvent(e *CalendarEvent) error {
	v := domain.NewValidationError()
	if strings.TrimSpace(e.Title) == "" {
		v.Add("title", msgRequired)
	}
	switch {
	case e.Date == "":
		v.Add("date", msgRequired)
	case !isDate(e.Date):
		if _, err := time.Parse("2006-01-02T15:04", e.Date); err != nil {
			v.Add("date", msgInvalidDate)
		}
	}
	if e.Type != "" && !IsValidEventType(e.Type) {
		v.Add("type", msgInvalidValue)
	}
	return v.OrNil()
}

// ValidateDocument verifica nombre y contenido del documento.
func ValidateDocument(d *Document) error {
	v := domain.NewValidationError()
	if strings.TrimSpace(d.Name) == "" {
		v.Add("name", msgRequired)
	}
	if d.Data == "" {
		v.Add("data", msgRequired)
	}
	return v.OrNil()
}
