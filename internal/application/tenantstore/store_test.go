package tenantstore_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
	"github.com/jhoicas/gestione-sindacale/internal/domain/repository"
	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/memory"
)

var (
	actorA = entity.Actor{UserID: "ua", Name: "Anna Bianchi", SedeID: "sede-a", Role: entity.RoleOwner}
	actorB = entity.Actor{UserID: "ub", Name: "Bruno Verdi", SedeID: "sede-b", Role: entity.RoleOperator}
	fixed  = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
)

func newStore(t *testing.T, opts ...tenantstore.Option) (*tenantstore.Store, *memory.CollectionStorage) {
	t.Helper()
	storage := memory.NewCollectionStorage()
	var seq atomic.Int64
	base := []tenantstore.Option{
		tenantstore.WithClock(func() time.Time { return fixed }),
		tenantstore.WithIDGenerator(
			func() string { return fmt.Sprintf("id%d", seq.Add(1)) },
			func() string { return fmt.Sprintf("sede-%d", seq.Add(1)) },
		),
	}
	return tenantstore.New(storage, append(base, opts...)...), storage
}

func member(id, name string) *entity.Member {
	return &entity.Member{ID: id, FirstName: name, LastName: "Rossi", TaxID: "RSSMRA80D12H501U"}
}

func TestTenantIsolation(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	_, err := s.SaveMember(ctx, member("m1", "Mario"), actorA)
	require.NoError(t, err)
	_, err = s.SaveCase(ctx, &entity.Case{ID: "c1", Title: "Vertenza"}, actorA)
	require.NoError(t, err)
	_, err = s.SaveMember(ctx, member("m2", "Luca"), actorB)
	require.NoError(t, err)

	listB, err := s.ListMembers(ctx, "sede-b")
	require.NoError(t, err)
	require.Len(t, listB, 1)
	assert.Equal(t, "m2", listB[0].ID)

	casesB, err := s.ListCases(ctx, "sede-b")
	require.NoError(t, err)
	assert.Empty(t, casesB)

	got, err := s.GetMember(ctx, "sede-b", "m1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestForcedOwnership(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	forged := member("m1", "Mario")
	forged.SedeID = "sede-b"
	_, err := s.SaveMember(ctx, forged, actorA)
	require.NoError(t, err)

	listA, _ := s.ListMembers(ctx, "sede-a")
	listB, _ := s.ListMembers(ctx, "sede-b")
	require.Len(t, listA, 1)
	assert.Equal(t, "sede-a", listA[0].SedeID)
	assert.Empty(t, listB)
}

func TestSave_UpdateVsCreate(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	created, err := s.SaveEvent(ctx, &entity.CalendarEvent{ID: "e1", Title: "Assemblea"}, actorA)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.SaveEvent(ctx, &entity.CalendarEvent{ID: "e1", Title: "Assemblea generale"}, actorA)
	require.NoError(t, err)
	assert.False(t, created)

	list, _ := s.ListEvents(ctx, "sede-a")
	require.Len(t, list, 1)
	assert.Equal(t, "Assemblea generale", list[0].Title)

	created, err = s.SaveEvent(ctx, &entity.CalendarEvent{ID: "e2", Title: "Direttivo"}, actorA)
	require.NoError(t, err)
	assert.True(t, created)
	list, _ = s.ListEvents(ctx, "sede-a")
	assert.Len(t, list, 2)

	logs, _ := s.ListActivity(ctx, "sede-a")
	require.Len(t, logs, 3)
	assert.Equal(t, entity.ActionEventCreate, logs[0].Action)
	assert.Equal(t, entity.ActionEventUpdate, logs[1].Action)
	assert.Equal(t, "Aggiornato: Assemblea generale", logs[1].Details)
	assert.Equal(t, "Anna Bianchi", logs[0].UserName)
}

func TestSave_MismoIDEnOtraSedeAgrega(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	_, err := s.SaveMember(ctx, member("m1", "Mario"), actorA)
	require.NoError(t, err)
	created, err := s.SaveMember(ctx, member("m1", "Intruso"), actorB)
	require.NoError(t, err)
	assert.True(t, created)

	a, _ := s.GetMember(ctx, "sede-a", "m1")
	require.NotNil(t, a)
	assert.Equal(t, "Mario", a.FirstName, "el registro de la sede A no cambia")
}

func TestSave_AsignaIDSiFalta(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	d := &entity.Document{Name: "delega.pdf", Data: "JVBERi0="}
	created, err := s.SaveDocument(ctx, d, actorA)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, d.ID)

	got, err := s.GetDocument(ctx, "sede-a", d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "delega.pdf", got.Name)
}

func TestDelete_CrossTenantNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	_, err := s.SaveCase(ctx, &entity.Case{ID: "cb", Title: "Pratica B"}, actorB)
	require.NoError(t, err)

	removed, err := s.DeleteCase(ctx, "cb", actorA)
	require.NoError(t, err)
	assert.False(t, removed)

	listB, _ := s.ListCases(ctx, "sede-b")
	assert.Len(t, listB, 1)

	// La actividad se registra igual, en la sede de quien lo intentó.
	logsA, _ := s.ListActivity(ctx, "sede-a")
	require.Len(t, logsA, 1)
	assert.Equal(t, entity.ActionCaseDelete, logsA[0].Action)

	removed, err = s.DeleteCase(ctx, "cb", actorB)
	require.NoError(t, err)
	assert.True(t, removed)
	listB, _ = s.ListCases(ctx, "sede-b")
	assert.Empty(t, listB)
}

func TestActivityLog_TopeGlobal(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t, tenantstore.WithLogCap(20))

	for i := 0; i < 21; i++ {
		actor := actorA
		if i%2 == 1 {
			actor = actorB
		}
		require.NoError(t, s.LogActivity(ctx, entity.ActivityLog{
			UserID: actor.UserID, SedeID: actor.SedeID, Action: "Test", Details: fmt.Sprintf("n%d", i),
		}))
	}

	a, _ := s.ListActivity(ctx, "sede-a")
	b, _ := s.ListActivity(ctx, "sede-b")
	assert.Equal(t, 20, len(a)+len(b))
	// La más antigua (n0, sede A) se descartó; la más reciente va primero.
	assert.Equal(t, "n20", a[0].Details)
	assert.Equal(t, "n2", a[len(a)-1].Details)
}

func TestActivityLog_TopePorDefecto2000(t *testing.T) {
	ctx := context.Background()
	s, storage := newStore(t)

	seed := make([]entity.ActivityLog, 2000)
	for i := range seed {
		// Orden almacenado: más reciente primero (n1999 ... n0).
		seed[i] = entity.ActivityLog{ID: fmt.Sprintf("l%d", 1999-i), SedeID: "sede-b", Details: fmt.Sprintf("n%d", 1999-i)}
	}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	_, err = storage.Write(ctx, repository.KeyActivityLogs, data, 0)
	require.NoError(t, err)

	require.NoError(t, s.LogActivity(ctx, entity.ActivityLog{SedeID: "sede-a", Details: "n2000"}))

	a, _ := s.ListActivity(ctx, "sede-a")
	b, _ := s.ListActivity(ctx, "sede-b")
	assert.Len(t, a, 1)
	assert.Len(t, b, 1999)
	assert.Equal(t, "n1999", b[0].Details)
	assert.Equal(t, "n1", b[len(b)-1].Details, "la entrada n0 se descartó")
}

func TestSaveNotification_Idempotente(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	n := entity.Notification{ID: "deadline-c1-2026-10-17", Title: "Scadenza Pratica", SedeID: "sede-a"}

	inserted, err := s.SaveNotification(ctx, n)
	require.NoError(t, err)
	assert.True(t, inserted)

	n.Message = "otro texto"
	inserted, err = s.SaveNotification(ctx, n)
	require.NoError(t, err)
	assert.False(t, inserted)

	list, _ := s.ListNotifications(ctx, "sede-a")
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Message)
	assert.True(t, fixed.Equal(list[0].Date))
}

func TestMarkAsRead_VerificaSede(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	_, err := s.SaveNotification(ctx, entity.Notification{ID: "n1", SedeID: "sede-b"})
	require.NoError(t, err)

	found, err := s.MarkAsRead(ctx, "n1", actorA)
	require.NoError(t, err)
	assert.False(t, found)
	list, _ := s.ListNotifications(ctx, "sede-b")
	assert.False(t, list[0].IsRead)

	found, err = s.MarkAsRead(ctx, "n1", actorB)
	require.NoError(t, err)
	assert.True(t, found)
	list, _ = s.ListNotifications(ctx, "sede-b")
	assert.True(t, list[0].IsRead)
}

func TestMarkAllAsRead(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	for _, id := range []string{"n1", "n2"} {
		_, err := s.SaveNotification(ctx, entity.Notification{ID: id, SedeID: "sede-a"})
		require.NoError(t, err)
	}
	_, err := s.SaveNotification(ctx, entity.Notification{ID: "n3", SedeID: "sede-b"})
	require.NoError(t, err)

	changed, err := s.MarkAllAsRead(ctx, actorA)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)
	b, _ := s.ListNotifications(ctx, "sede-b")
	assert.False(t, b[0].IsRead)
}

func TestResolveOffice_NormalizaNombre(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	o1, created, err := s.ResolveOffice(ctx, "  Sede   Roma ")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Sede Roma", o1.Name)

	o2, created, err := s.ResolveOffice(ctx, "SEDE ROMA")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, o1.ID, o2.ID)

	o3, created, err := s.ResolveOffice(ctx, "Sede Milano")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, o1.ID, o3.ID)

	_, _, err = s.ResolveOffice(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalizeOfficeName(t *testing.T) {
	assert.Equal(t, tenantstore.NormalizeOfficeName("Sede ÀNCONA"), tenantstore.NormalizeOfficeName("sede  àncona"))
	assert.Equal(t, "sede roma", tenantstore.NormalizeOfficeName("Sede\tRoma"))
}

func TestAddUser_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	u := &entity.User{Email: "anna@sede.it", Password: "hash", DisplayName: "Anna", SedeID: "sede-a", Role: entity.RoleOwner}
	require.NoError(t, s.AddUser(ctx, u))
	assert.NotEmpty(t, u.ID)

	err := s.AddUser(ctx, &entity.User{Email: "ANNA@sede.it", SedeID: "sede-a"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	found, err := s.FindUserByEmail(ctx, "Anna@Sede.it")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "hash", found.Password)

	users, err := s.ListUsers(ctx, "sede-a")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)

	logs, _ := s.ListActivity(ctx, "sede-a")
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ActionRegister, logs[0].Action)
}

func TestCurrentSession(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	cur, err := s.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	require.NoError(t, s.SetCurrentSession(ctx, &entity.User{ID: "u1", Email: "a@b.it", Password: "hash", SedeID: "sede-a"}))
	cur, err = s.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "u1", cur.ID)
	assert.Empty(t, cur.Password)

	require.NoError(t, s.ClearSession(ctx))
	cur, err = s.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
	require.NoError(t, s.ClearSession(ctx), "limpiar sin sesión no falla")
}

// conflictingStorage inyecta conflictos de revisión en las primeras escrituras.
type conflictingStorage struct {
	repository.CollectionStorage
	failures atomic.Int32
}

func (c *conflictingStorage) Write(ctx context.Context, key string, data []byte, expected int64) (int64, error) {
	if c.failures.Add(-1) >= 0 {
		return 0, domain.ErrRevisionConflict
	}
	return c.CollectionStorage.Write(ctx, key, data, expected)
}

func TestUpdate_ReintentaConflictos(t *testing.T) {
	ctx := context.Background()
	storage := &conflictingStorage{CollectionStorage: memory.NewCollectionStorage()}
	storage.failures.Store(2)
	s := tenantstore.New(storage, tenantstore.WithRetryAttempts(5))

	_, err := s.SaveMember(ctx, member("m1", "Mario"), actorA)
	require.NoError(t, err)
	list, _ := s.ListMembers(ctx, "sede-a")
	assert.Len(t, list, 1)
}

func TestUpdate_AgotaReintentos(t *testing.T) {
	ctx := context.Background()
	storage := &conflictingStorage{CollectionStorage: memory.NewCollectionStorage()}
	storage.failures.Store(100)
	s := tenantstore.New(storage, tenantstore.WithRetryAttempts(3))

	_, err := s.SaveMember(ctx, member("m1", "Mario"), actorA)
	assert.ErrorIs(t, err, domain.ErrRevisionConflict)
}

func TestLoad_ValorIlegibleSeTrataComoVacio(t *testing.T) {
	ctx := context.Background()
	s, storage := newStore(t)
	_, err := storage.Write(ctx, repository.KeyMembers, []byte(`{"oops":1}`), 0)
	require.NoError(t, err)

	list, err := s.ListMembers(ctx, "sede-a")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = s.SaveMember(ctx, member("m1", "Mario"), actorA)
	require.NoError(t, err)
	list, err = s.ListMembers(ctx, "sede-a")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestConcurrentSaves_NoPierdenEscrituras(t *testing.T) {
	ctx := context.Background()
	s := tenantstore.New(memory.NewCollectionStorage(), tenantstore.WithRetryAttempts(50))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.SaveMember(ctx, member(fmt.Sprintf("m%d", i), "Socio"), actorA)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	list, err := s.ListMembers(ctx, "sede-a")
	require.NoError(t, err)
	assert.Len(t, list, 10)
	logs, _ := s.ListActivity(ctx, "sede-a")
	assert.Len(t, logs, 10)
}
