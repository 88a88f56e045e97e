package entity

import "time"

// Document archivo del archivio de la sede. Las referencias a iscritto y
// pratica son débiles: pueden quedar colgando y simplemente no se resuelven.
type Document struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	DateAdded          time.Time `json:"dateAdded"`
	Size               string    `json:"size"`
	Data               string    `json:"data"` // base64
	SedeID             string    `json:"sedeId"`
	AssociatedMemberID string    `json:"associatedMemberId,omitempty"`
	AssociatedCaseID   string    `json:"associatedCaseId,omitempty"`
}

func (d *Document) GetID() string           { return d.ID }
func (d *Document) SetID(id string)         { d.ID = id }
func (d *Document) GetSedeID() string       { return d.SedeID }
func (d *Document) SetSedeID(sedeID string) { d.SedeID = sedeID }
