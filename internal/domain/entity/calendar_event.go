package entity

// Tipos de evento de calendario.
const (
	EventTypeScheduled = "scheduled"
	EventTypeConfirmed = "confirmed"
	EventTypeUrgent    = "urgent"
	EventTypeCompleted = "completed"
	EventTypeCancelled = "cancelled"
	EventTypePostponed = "postponed"
)

// Categorías de evento.
const (
	EventCategoryMeeting  = "meeting"
	EventCategoryCase     = "case"
	EventCategoryDeadline = "deadline"
	EventCategoryOther    = "other"
)

var eventTypes = map[string]struct{}{
	EventTypeScheduled: {}, EventTypeConfirmed: {}, EventTypeUrgent: {},
	EventTypeCompleted: {}, EventTypeCancelled: {}, EventTypePostponed: {},
}

// IsValidEventType reporta si t es un tipo conocido.
func IsValidEventType(t string) bool {
	_, ok := eventTypes[t]
	return ok
}

// CalendarEvent elemento de agenda de la sede. Los vencimientos de las
// pratiche no se guardan aquí: se derivan.
type CalendarEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // "2006-01-02" o "2006-01-02T15:04"
	Type        string `json:"type"`
	Category    string `json:"category"`
	Critical    bool   `json:"critical"`
	Description string `json:"description"`
	SedeID      string `json:"sedeId"`
	RelatedID   string `json:"relatedId,omitempty"`
}

func (e *CalendarEvent) GetID() string           { return e.ID }
func (e *CalendarEvent) SetID(id string)         { e.ID = id }
func (e *CalendarEvent) GetSedeID() string       { return e.SedeID }
func (e *CalendarEvent) SetSedeID(sedeID string) { e.SedeID = sedeID }
