package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestione-sindacale/internal/application/auth"
	"github.com/jhoicas/gestione-sindacale/internal/application/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	domaindeadline "github.com/jhoicas/gestione-sindacale/internal/domain/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/memory"
	"github.com/jhoicas/gestione-sindacale/pkg/jwt"
)

const secret = "test-secret"

func newUseCase(t *testing.T, now time.Time) (*auth.AuthUseCase, *tenantstore.Store) {
	t.Helper()
	store := tenantstore.New(memory.NewCollectionStorage(), tenantstore.WithClock(func() time.Time { return now }))
	scanner := deadline.NewScanner(store, domaindeadline.DefaultPolicy(), nil, zerolog.Nop())
	uc := auth.NewAuthUseCase(store, scanner, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}, zerolog.Nop())
	return uc, store
}

func register(t *testing.T, uc *auth.AuthUseCase, email, office string) *dto.RegisterResponse {
	t.Helper()
	res, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: email, Password: "password123", OfficeName: office, DisplayName: "Operatore " + email,
	})
	require.NoError(t, err)
	return res
}

func TestRegister_PrimeroOwnerLuegoOperator(t *testing.T) {
	uc, _ := newUseCase(t, time.Now())

	first := register(t, uc, "u1@roma.it", "Sede Roma")
	assert.True(t, first.OfficeCreated)
	assert.Equal(t, entity.RoleOwner, first.User.Role)
	require.NotEmpty(t, first.User.SedeID)

	second := register(t, uc, "u2@roma.it", "  sede   ROMA ")
	assert.False(t, second.OfficeCreated)
	assert.Equal(t, entity.RoleOperator, second.User.Role)
	assert.Equal(t, first.User.SedeID, second.User.SedeID)

	other := register(t, uc, "u3@milano.it", "Sede Milano")
	assert.Equal(t, entity.RoleOwner, other.User.Role)
	assert.NotEqual(t, first.User.SedeID, other.User.SedeID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase(t, time.Now())
	register(t, uc, "u1@roma.it", "Sede Roma")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "U1@Roma.it", Password: "x", OfficeName: "Altra", DisplayName: "X",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validacion(t *testing.T) {
	uc, _ := newUseCase(t, time.Now())
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "non-email"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email non valida", verr.Fields["email"])
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "nomeSede")
}

func TestAuthenticate_SesionSinCredencial(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t, time.Now())
	reg := register(t, uc, "u1@roma.it", "Sede Roma")

	user, err := uc.Authenticate(ctx, "u1@roma.it", "password123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Empty(t, user.Password)

	session, err := uc.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, reg.User.ID, session.ID)
	assert.Empty(t, session.Password)

	logs, err := store.ListActivity(ctx, reg.User.SedeID)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, entity.ActionLogin, logs[0].Action)
	assert.Equal(t, "Accesso al gestionale effettuato", logs[0].Details)
}

func TestAuthenticate_CredencialesIncorrectas(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, time.Now())
	register(t, uc, "u1@roma.it", "Sede Roma")

	user, err := uc.Authenticate(ctx, "u1@roma.it", "sbagliata")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = uc.Authenticate(ctx, "nessuno@roma.it", "password123")
	assert.NoError(t, err)
	assert.Nil(t, user)

	session, _ := uc.CurrentSession(ctx)
	assert.Nil(t, session)
}

func TestLogin_TokenYEscaneo(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	uc, store := newUseCase(t, now)
	reg := register(t, uc, "u1@roma.it", "Sede Roma")
	actor := entity.Actor{UserID: reg.User.ID, SedeID: reg.User.SedeID, Name: "U1"}

	_, err := store.SaveCase(ctx, &entity.Case{ID: "C1", Title: "Ricorso", DueDate: now.AddDate(0, 0, 2).Format(entity.DateLayout)}, actor)
	require.NoError(t, err)

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "u1@roma.it", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Reminders)
	assert.Equal(t, 3600, res.ExpiresIn)

	claims, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.SedeID, claims.SedeID)
	assert.Equal(t, entity.RoleOwner, claims.Role)

	// Tres recargas el mismo día: un único aviso.
	for i := 0; i < 3; i++ {
		_, err = uc.Login(ctx, dto.LoginRequest{Email: "u1@roma.it", Password: "password123"})
		require.NoError(t, err)
	}
	list, err := store.ListNotifications(ctx, reg.User.SedeID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "deadline-C1-2026-10-17", list[0].ID)
	assert.Equal(t, entity.SeverityDanger, list[0].Severity)

	// El login HTTP no usa la sesión actual.
	session, _ := uc.CurrentSession(ctx)
	assert.Nil(t, session)
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	uc, _ := newUseCase(t, time.Now())
	register(t, uc, "u1@roma.it", "Sede Roma")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "u1@roma.it", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_EmailDistingueMayusculas(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, time.Now())
	register(t, uc, "Mario@Example.it", "Sede Roma")

	user, err := uc.Authenticate(ctx, "mario@example.it", "password123")
	assert.NoError(t, err)
	assert.Nil(t, user)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "mario@example.it", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	user, err = uc.Authenticate(ctx, "Mario@Example.it", "password123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Mario@Example.it", user.Email)
}

func TestLogout_RegistraYLimpia(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t, time.Now())
	reg := register(t, uc, "u1@roma.it", "Sede Roma")
	_, err := uc.Authenticate(ctx, "u1@roma.it", "password123")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx))
	session, _ := uc.CurrentSession(ctx)
	assert.Nil(t, session)

	logs, _ := store.ListActivity(ctx, reg.User.SedeID)
	assert.Equal(t, entity.ActionLogout, logs[0].Action)
	assert.Equal(t, "Chiusura sessione", logs[0].Details)

	// Sin sesión no falla.
	assert.NoError(t, uc.Logout(ctx))
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, time.Now())
	reg := register(t, uc, "u1@roma.it", "Sede Roma")

	me, err := uc.Me(ctx, entity.Actor{UserID: reg.User.ID, SedeID: reg.User.SedeID})
	require.NoError(t, err)
	assert.Equal(t, "u1@roma.it", me.Email)

	_, err = uc.Me(ctx, entity.Actor{UserID: reg.User.ID, SedeID: "altra"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
