package auth

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestione-sindacale/internal/application/mail"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/pkg/jwt"
)

// Role del token de recuperación; el middleware nunca lo acepta como sesión.
const resetTokenRole = "password-reset"

const resetTokenMinutes = 30

// PasswordResetUseCase recuperación de credenciales por correo.
type PasswordResetUseCase struct {
	store   *tenantstore.Store
	mailer  *mail.Service
	jwtCfg  JWTConfig
	baseURL string
	log     zerolog.Logger
}

// NewPasswordResetUseCase construye el caso de uso. baseURL es la dirección
// pública del frontend donde se abre el enlace.
func NewPasswordResetUseCase(store *tenantstore.Store, mailer *mail.Service, jwtCfg JWTConfig, baseURL string, log zerolog.Logger) *PasswordResetUseCase {
	return &PasswordResetUseCase{store: store, mailer: mailer, jwtCfg: jwtCfg, baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

// Request envía el enlace de recuperación si el email existe. Un email
// desconocido no se distingue de uno conocido: el resultado es éxito vacío.
func (uc *PasswordResetUseCase) Request(ctx context.Context, email string) (mail.Result, error) {
	user, err := uc.store.FindUserByEmail(ctx, email)
	if err != nil {
		return mail.Result{}, err
	}
	if user == nil {
		uc.log.Info().Msg("recuperación solicitada para email desconocido")
		return mail.Result{Success: true}, nil
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID: user.ID,
		SedeID: user.SedeID,
		Role:   resetTokenRole,
	}, uc.jwtCfg.Issuer, resetTokenMinutes)
	if err != nil {
		return mail.Result{}, err
	}
	link := uc.baseURL + "/reset-password?token=" + url.QueryEscape(token)
	return uc.mailer.SendPasswordReset(ctx, user.Email, user.DisplayName, link), nil
}

// Confirm fija la nueva credencial. Un token inválido, expirado o que no sea de
// recuperación devuelve ErrUnauthorized.
func (uc *PasswordResetUseCase) Confirm(ctx context.Context, token, password string) error {
	if len(password) < 8 {
		v := domain.NewValidationError()
		v.Add("password", "Minimo 8 caratteri")
		return v
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil || claims.Role != resetTokenRole {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.store.SetUserPassword(ctx, claims.UserID, string(hash)); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", claims.UserID).Str("sede_id", claims.SedeID).Msg("credencial restablecida")
	return nil
}
