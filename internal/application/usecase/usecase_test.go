package usecase_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestione-sindacale/internal/application/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/application/usecase"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	domaindeadline "github.com/jhoicas/gestione-sindacale/internal/domain/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/memory"
)

var (
	fixedNow = time.Date(2026, 10, 17, 10, 30, 0, 0, time.UTC)
	actorA   = entity.Actor{UserID: "u1", Name: "Mario Bianchi", SedeID: "A", Role: entity.RoleOwner}
	actorB   = entity.Actor{UserID: "u2", Name: "Luca Verdi", SedeID: "B", Role: entity.RoleOperator}
)

func newStore() *tenantstore.Store {
	return tenantstore.New(memory.NewCollectionStorage(), tenantstore.WithClock(func() time.Time { return fixedNow }))
}

func validMember() entity.Member {
	return entity.Member{
		FirstName:          "Giulia",
		LastName:           "Rossi",
		BirthDate:          "1985-03-12",
		CollaborationStart: "2020-01-01",
		TaxID:              "rssglu85c52h501z",
		Phone:              "3331234567",
		Email:              "giulia@example.it",
	}
}

func TestMemberCreate_ValoresIniciales(t *testing.T) {
	uc := usecase.NewMemberUseCase(newStore(), time.UTC)

	m, err := uc.Create(context.Background(), actorA, validMember())
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "A", m.SedeID)
	assert.Equal(t, "RSSGLU85C52H501Z", m.TaxID)
	assert.Equal(t, "2026-10-17", m.EnrollmentDate)
	assert.True(t, m.DuesActive)
	assert.Equal(t, entity.MemberStatusActive, m.Status)
	assert.Equal(t, "Creato da Mario Bianchi il 17/10/2026", m.Note)
}

func TestMemberCreate_Validacion(t *testing.T) {
	uc := usecase.NewMemberUseCase(newStore(), time.UTC)
	in := validMember()
	in.TaxID = "ABC"

	_, err := uc.Create(context.Background(), actorA, in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Formato non valido", verr.Fields["codiceFiscale"])
}

func TestMemberList_Busqueda(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewMemberUseCase(newStore(), time.UTC)
	_, err := uc.Create(ctx, actorA, validMember())
	require.NoError(t, err)
	other := validMember()
	other.FirstName, other.LastName, other.TaxID = "Paolo", "Neri", "NRIPLA80A01F205X"
	_, err = uc.Create(ctx, actorA, other)
	require.NoError(t, err)

	found, err := uc.List(ctx, "A", "rossi giu")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Giulia", found[0].FirstName)

	found, err = uc.List(ctx, "A", "nripla")
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = uc.List(ctx, "B", "")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMemberUpdateDelete_OtraSede(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewMemberUseCase(newStore(), time.UTC)
	m, err := uc.Create(ctx, actorA, validMember())
	require.NoError(t, err)

	_, err = uc.Update(ctx, actorB, m.ID, validMember())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, actorB, m.ID), domain.ErrNotFound)

	upd := validMember()
	upd.Phone = "000"
	got, err := uc.Update(ctx, actorA, m.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, m.EnrollmentDate, got.EnrollmentDate)
	assert.Equal(t, m.Note, got.Note)
	assert.Len(t, got.History, 2)

	require.NoError(t, uc.Delete(ctx, actorA, m.ID))
	_, err = uc.Get(ctx, "A", m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCaseCreateAndMoveStatus(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCaseUseCase(newStore(), nil, time.UTC, zerolog.Nop())

	c, err := uc.Create(ctx, actorA, entity.Case{Title: "Vertenza", MemberID: "m1", DueDate: "2026-11-01"})
	require.NoError(t, err)
	assert.Equal(t, entity.CaseStatusNew, c.Status)
	assert.Equal(t, entity.PriorityMedium, c.Priority)
	assert.Equal(t, "2026-10-17", c.OpenedOn)
	assert.Empty(t, c.Timeline)

	moved, err := uc.MoveStatus(ctx, actorA, c.ID, entity.CaseStatusAwaitingDocuments)
	require.NoError(t, err)
	require.Len(t, moved.Timeline, 1)
	assert.Equal(t, "Spostata in stato: AWAITING DOCUMENTS", moved.Timeline[0].Content)
	assert.Equal(t, "Mario Bianchi", moved.Timeline[0].User)
	require.NotNil(t, moved.LastModified)

	// Mismo estado: sin nueva entrada.
	same, err := uc.MoveStatus(ctx, actorA, c.ID, entity.CaseStatusAwaitingDocuments)
	require.NoError(t, err)
	assert.Len(t, same.Timeline, 1)

	_, err = uc.MoveStatus(ctx, actorA, c.ID, "inventato")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Update conserva historial y apertura.
	upd, err := uc.Update(ctx, actorA, c.ID, entity.Case{Title: "Vertenza 2", MemberID: "m1", DueDate: "2026-11-02", OpenedOn: "1999-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17", upd.OpenedOn)
	assert.Len(t, upd.Timeline, 1)
	assert.Equal(t, entity.CaseStatusAwaitingDocuments, upd.Status)
}

func TestCaseCreate_AdjuntoCompletaMetadatos(t *testing.T) {
	uc := usecase.NewCaseUseCase(newStore(), nil, time.UTC, zerolog.Nop())
	data := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(make([]byte, 2048))

	c, err := uc.Create(context.Background(), actorA, entity.Case{
		Title: "Ricorso", MemberID: "m1", DueDate: "2026-11-01",
		Files: []entity.CaseFile{{Name: "a.pdf", Data: data}},
	})
	require.NoError(t, err)
	require.Len(t, c.Files, 1)
	assert.Equal(t, "2.00 KB", c.Files[0].Size)
	assert.Equal(t, "Mario Bianchi", c.Files[0].UploadedBy)
	assert.NotEmpty(t, c.Files[0].ID)

	_, err = uc.Create(context.Background(), actorA, entity.Case{
		Title: "Ricorso", MemberID: "m1", DueDate: "2026-11-01",
		Files: []entity.CaseFile{{Name: "x", Data: "%%%"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCaseCreate_RechazaVariosAdjuntos(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	uc := usecase.NewCaseUseCase(store, nil, time.UTC, zerolog.Nop())
	data := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(make([]byte, 16))

	_, err := uc.Create(ctx, actorA, entity.Case{
		Title: "Ricorso", MemberID: "m1", DueDate: "2026-11-01",
		Files: []entity.CaseFile{{Name: "a.pdf", Data: data}, {Name: "b.pdf", Data: data}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "files")

	list, err := store.ListCases(ctx, "A")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCaseList_EjecutaEscaneo(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	scanner := deadline.NewScanner(store, domaindeadline.DefaultPolicy(), nil, zerolog.Nop())
	uc := usecase.NewCaseUseCase(store, scanner, time.UTC, zerolog.Nop())

	_, err := uc.Create(ctx, actorA, entity.Case{Title: "Vicina", MemberID: "m1", DueDate: "2026-10-20"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, actorA, entity.Case{Title: "Lontana", MemberID: "m1", DueDate: "2026-12-20", Status: entity.CaseStatusUrgent})
	require.NoError(t, err)

	list, err := uc.List(ctx, "A", entity.CaseStatusUrgent, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lontana", list[0].Title)

	notifications, err := store.ListNotifications(ctx, "A")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.SeverityWarning, notifications[0].Severity)
}

func TestEventList_OrdenadosYFiltrados(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewEventUseCase(newStore())
	for _, d := range []string{"2026-10-30", "2026-10-18T09:30", "2026-11-15"} {
		_, err := uc.Create(ctx, actorA, entity.CalendarEvent{Title: "Riunione " + d, Date: d})
		require.NoError(t, err)
	}

	list, err := uc.List(ctx, "A", "2026-10-01", "2026-10-31")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-10-18T09:30", list[0].Date)
	assert.Equal(t, entity.EventTypeScheduled, list[0].Type)
	assert.Equal(t, entity.EventCategoryOther, list[0].Category)

	_, err = uc.Create(ctx, actorA, entity.CalendarEvent{Title: "X", Date: "domani"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentCreate_TamanoYFiltros(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDocumentUseCase(newStore())
	data := base64.StdEncoding.EncodeToString(make([]byte, 1536))

	d, err := uc.Create(ctx, actorA, entity.Document{Name: "Delega", Data: data, AssociatedMemberID: "m1"})
	require.NoError(t, err)
	assert.Equal(t, "1.50 KB", d.Size)
	assert.Equal(t, "Documento", d.Type)
	assert.True(t, d.DateAdded.Equal(fixedNow))

	list, err := uc.List(ctx, "A", usecase.DocumentFilter{MemberID: "m1"}, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Data)

	list, err = uc.List(ctx, "A", usecase.DocumentFilter{CaseID: "c9"}, true)
	require.NoError(t, err)
	assert.Empty(t, list)

	full, err := uc.Get(ctx, "A", d.ID)
	require.NoError(t, err)
	assert.Equal(t, data, full.Data)
}

func TestActivityList_SoloOwnerYAdmin(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	members := usecase.NewMemberUseCase(store, time.UTC)
	_, err := members.Create(ctx, actorA, validMember())
	require.NoError(t, err)

	uc := usecase.NewActivityUseCase(store)
	_, err = uc.List(ctx, entity.Actor{SedeID: "A", Role: entity.RoleOperator}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	res, err := uc.List(ctx, actorA, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, entity.ActionMemberCreate, res.Items[0].Action)
	assert.Equal(t, "Inserito Rossi Giulia nel database", res.Items[0].Details)
	assert.Equal(t, 1, res.Page.Total)
}

func TestNotificationMarkAsRead_OtraSede(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	_, err := store.SaveNotification(ctx, entity.Notification{ID: "n1", SedeID: "A", Title: "t"})
	require.NoError(t, err)
	uc := usecase.NewNotificationUseCase(store)

	assert.ErrorIs(t, uc.MarkAsRead(ctx, actorB, "n1"), domain.ErrNotFound)
	require.NoError(t, uc.MarkAsRead(ctx, actorA, "n1"))

	unread, err := uc.List(ctx, "A", true)
	require.NoError(t, err)
	assert.Empty(t, unread)
}
