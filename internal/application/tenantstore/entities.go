package tenantstore

import (
	"context"

	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
	"github.com/jhoicas/gestione-sindacale/internal/domain/repository"
)

var memberKind = kind[entity.Member]{
	key:          repository.KeyMembers,
	createAction: entity.ActionMemberCreate,
	updateAction: entity.ActionMemberUpdate,
	deleteAction: entity.ActionMemberDelete,
	createDetail: func(m *entity.Member) string { return "Inserito " + m.FullName() + " nel database" },
	updateDetail: func(m *entity.Member) string { return "Aggiornata anagrafica di " + m.FullName() },
	deleteDetail: func(id string) string { return "Rimosso iscritto ID: " + id },
}

var caseKind = kind[entity.Case]{
	key:          repository.KeyCases,
	createAction: entity.ActionCaseCreate,
	updateAction: entity.ActionCaseUpdate,
	deleteAction: entity.ActionCaseDelete,
	createDetail: func(c *entity.Case) string { return "Creata nuova pratica: " + c.Title },
	updateDetail: func(c *entity.Case) string { return "Modificata pratica: " + c.Title },
	deleteDetail: func(id string) string { return "Rimossa pratica ID: " + id },
}

var eventKind = kind[entity.CalendarEvent]{
	key:          repository.KeyEvents,
	createAction: entity.ActionEventCreate,
	updateAction: entity.ActionEventUpdate,
	deleteAction: entity.ActionEventDelete,
	createDetail: func(e *entity.CalendarEvent) string { return "Pianificato: " + e.Title },
	updateDetail: func(e *entity.CalendarEvent) string { return "Aggiornato: " + e.Title },
	deleteDetail: func(id string) string { return "Rimosso appuntamento ID: " + id },
}

var documentKind = kind[entity.Document]{
	key:          repository.KeyDocuments,
	createAction: entity.ActionDocumentCreate,
	updateAction: entity.ActionDocumentUpdate,
	deleteAction: entity.ActionDocumentDelete,
	createDetail: func(d *entity.Document) string { return "Salvato file: " + d.Name },
	updateDetail: func(d *entity.Document) string { return "Aggiornato file: " + d.Name },
	deleteDetail: func(id string) string { return "Rimosso file ID: " + id },
}

// Iscritti.

func (s *Store) ListMembers(ctx context.Context, sedeID string) ([]entity.Member, error) {
	return list(ctx, s, memberKind, sedeID)
}

func (s *Store) GetMember(ctx context.Context, sedeID, id string) (*entity.Member, error) {
	return get(ctx, s, memberKind, sedeID, id)
}

func (s *Store) SaveMember(ctx context.Context, m *entity.Member, actor entity.Actor) (bool, error) {
	return save(ctx, s, memberKind, m, actor)
}

func (s *Store) DeleteMember(ctx context.Context, id string, actor entity.Actor) (bool, error) {
	return remove(ctx, s, memberKind, id, actor)
}

// Pratiche.

func (s *Store) ListCases(ctx context.Context, sedeID string) ([]entity.Case, error) {
	return list(ctx, s, caseKind, sedeID)
}

func (s *Store) GetCase(ctx context.Context, sedeID, id string) (*entity.Case, error) {
	return get(ctx, s, caseKind, sedeID, id)
}

func (s *Store) SaveCase(ctx context.Context, c *entity.Case, actor entity.Actor) (bool, error) {
	return save(ctx, s, caseKind, c, actor)
}

func (s *Store) DeleteCase(ctx context.Context, id string, actor entity.Actor) (bool, error) {
	return remove(ctx, s, caseKind, id, actor)
}

// Calendario.

func (s *Store) ListEvents(ctx context.Context, sedeID string) ([]entity.CalendarEvent, error) {
	return list(ctx, s, eventKind, sedeID)
}

func (s *Store) GetEvent(ctx context.Context, sedeID, id string) (*entity.CalendarEvent, error) {
	return get(ctx, s, eventKind, sedeID, id)
}

func (s *Store) SaveEvent(ctx context.Context, e *entity.CalendarEvent, actor entity.Actor) (bool, error) {
	return save(ctx, s, eventKind, e, actor)
}

func (s *Store) DeleteEvent(ctx context.Context, id string, actor entity.Actor) (bool, error) {
	return remove(ctx, s, eventKind, id, actor)
}

// Documenti.

func (s *Store) ListDocuments(ctx context.Context, sedeID string) ([]entity.Document, error) {
	return list(ctx, s, documentKind, sedeID)
}

func (s *Store) GetDocument(ctx context.Context, sedeID, id string) (*entity.Document, error) {
	return get(ctx, s, documentKind, sedeID, id)
}

func (s *Store) SaveDocument(ctx context.Context, d *entity.Document, actor entity.Actor) (bool, error) {
	return save(ctx, s, documentKind, d, actor)
}

func (s *Store) DeleteDocument(ctx context.Context, id string, actor entity.Actor) (bool, error) {
	return remove(ctx, s, documentKind, id, actor)
}
