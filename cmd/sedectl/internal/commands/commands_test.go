package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestione-sindacale/internal/application/auth"
	"github.com/jhoicas/gestione-sindacale/internal/application/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	domaindeadline "github.com/jhoicas/gestione-sindacale/internal/domain/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/memory"
)

func testEnv(t *testing.T) (*env, *bytes.Buffer) {
	t.Helper()
	store := tenantstore.New(memory.NewCollectionStorage())
	scanner := deadline.NewScanner(store, domaindeadline.DefaultPolicy(), nil, zerolog.Nop())
	out := &bytes.Buffer{}
	return &env{
		store:   store,
		scanner: scanner,
		auth:    auth.NewAuthUseCase(store, scanner, auth.JWTConfig{Secret: "s", ExpMinutes: 5}, zerolog.Nop()),
		out:     out,
		close:   func() {},
	}, out
}

func TestLoginWhoamiLogout(t *testing.T) {
	ctx := context.Background()
	e, out := testEnv(t)

	require.NoError(t, (&RegisterCmd{Email: "u1@roma.it", Password: "password123", Sede: "Sede Roma", Nome: "Mario"}).exec(ctx, e))
	assert.Contains(t, out.String(), "registrato come owner")

	assert.ErrorIs(t, (&WhoamiCmd{}).exec(ctx, e), errNoSession)
	assert.Error(t, (&LoginCmd{Email: "u1@roma.it", Password: "sbagliata"}).exec(ctx, e))

	require.NoError(t, (&LoginCmd{Email: "u1@roma.it", Password: "password123"}).exec(ctx, e))
	out.Reset()
	require.NoError(t, (&WhoamiCmd{}).exec(ctx, e))
	assert.Contains(t, out.String(), "Mario <u1@roma.it> owner")

	session, err := e.store.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Empty(t, session.Password)

	require.NoError(t, (&LogoutCmd{}).exec(ctx, e))
	assert.ErrorIs(t, (&WhoamiCmd{}).exec(ctx, e), errNoSession)
}

func TestScan_UsaLaSedeDeLaSesion(t *testing.T) {
	ctx := context.Background()
	e, out := testEnv(t)

	assert.ErrorIs(t, (&ScanCmd{}).exec(ctx, e), errNoSession)

	require.NoError(t, (&RegisterCmd{Email: "u1@roma.it", Password: "password123", Sede: "Sede Roma", Nome: "Mario"}).exec(ctx, e))
	require.NoError(t, (&LoginCmd{Email: "u1@roma.it", Password: "password123"}).exec(ctx, e))
	session, err := e.store.CurrentSession(ctx)
	require.NoError(t, err)

	actor := entity.ActorOf(session)
	due := time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")
	_, err = e.store.SaveCase(ctx, &entity.Case{Title: "Vertenza", MemberID: "m1", DueDate: due, Status: entity.CaseStatusNew}, actor)
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, (&ScanCmd{}).exec(ctx, e))
	assert.Contains(t, out.String(), "1 scadenze nella finestra, 1 promemoria nuovi")

	out.Reset()
	require.NoError(t, (&ScanCmd{Sede: session.SedeID}).exec(ctx, e))
	assert.Contains(t, out.String(), "0 promemoria nuovi")
}
