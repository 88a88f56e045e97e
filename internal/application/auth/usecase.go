package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestione-sindacale/internal/application/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
	"github.com/jhoicas/gestione-sindacale/pkg/jwt"
)

const (
	detailLogin  = "Accesso al gestionale effettuato"
	detailLogout = "Chiusura sessione"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Scanner escaneo de vencimientos ejecutado tras el login.
type Scanner interface {
	Scan(ctx context.Context, sedeID string) (deadline.Result, error)
}

// AuthUseCase casos de uso de autenticación: registro, login y sesión actual.
type AuthUseCase struct {
	store   *tenantstore.Store
	scanner Scanner
	jwtCfg  JWTConfig
	log     zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth. scanner puede ser nil.
func NewAuthUseCase(store *tenantstore.Store, scanner Scanner, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{store: store, scanner: scanner, jwtCfg: jwtCfg, log: log}
}

// Register crea un operador. Si la sede (por nombre normalizado) no existe se
// crea y el usuario queda como owner; si existe entra como operator con el id
// de esa sede. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	v := domain.NewValidationError()
	if in.Email == "" {
		v.Add("email", "Campo obbligatorio")
	} else if !entity.IsValidEmail(in.Email) {
		v.Add("email", "Email non valida")
	}
	if in.Password == "" {
		v.Add("password", "Campo obbligatorio")
	}
	if strings.TrimSpace(in.OfficeName) == "" {
		v.Add("nomeSede", "Campo obbligatorio")
	}
	if strings.TrimSpace(in.DisplayName) == "" {
		v.Add("operatore", "Campo obbligatorio")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	existing, err := uc.store.FindUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	office, created, err := uc.store.ResolveOffice(ctx, in.OfficeName)
	if err != nil {
		return nil, fmt.Errorf("resolver sede: %w", err)
	}
	role := entity.RoleOperator
	if created {
		role = entity.RoleOwner
	}
	user := &entity.User{
		Email:       in.Email,
		Password:    string(hash),
		OfficeName:  office.Name,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Role:        role,
		SedeID:      office.ID,
	}
	if err := uc.store.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{User: *toUserResponse(user), OfficeCreated: created}, nil
}

// Authenticate verifica email y credencial. Con credenciales erróneas devuelve
// (nil, nil): no hay sesión, no es un error. Con éxito guarda la copia sin
// credencial como sesión actual y registra el acceso.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, secret string) (*entity.User, error) {
	user, err := uc.verify(ctx, email, secret)
	if err != nil || user == nil {
		return nil, err
	}
	if err := uc.store.SetCurrentSession(ctx, user); err != nil {
		return nil, err
	}
	if err := uc.logAccess(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica credenciales, emite el JWT y ejecuta el escaneo de
// vencimientos de la sede. No toca la sesión actual: el token es la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.verify(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID: user.ID,
		SedeID: user.SedeID,
		Role:   user.Role,
		Name:   user.DisplayName,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.logAccess(ctx, user); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      *toUserResponse(user),
		Reminders: uc.scan(ctx, user.SedeID),
	}, nil
}

// Logout registra el cierre y elimina la sesión actual. Sin sesión no hace nada.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	session, err := uc.store.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}
	if err := uc.LogoutActor(ctx, entity.ActorOf(session)); err != nil {
		return err
	}
	return uc.store.ClearSession(ctx)
}

// LogoutActor registra el cierre de sesión de un token.
func (uc *AuthUseCase) LogoutActor(ctx context.Context, actor entity.Actor) error {
	return uc.store.LogActivity(ctx, entity.ActivityLog{
		UserID:   actor.UserID,
		UserName: actor.Name,
		Action:   entity.ActionLogout,
		Details:  detailLogout,
		SedeID:   actor.SedeID,
	})
}

// CurrentSession usuario de la sesión actual; nil si no hay.
func (uc *AuthUseCase) CurrentSession(ctx context.Context) (*entity.User, error) {
	return uc.store.CurrentSession(ctx)
}

// Me devuelve el operador autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, actor entity.Actor) (*dto.UserResponse, error) {
	u, err := uc.store.GetUser(ctx, actor.SedeID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(u), nil
}

// verify devuelve la copia sin credencial del usuario, o nil si no coincide.
// El email debe coincidir exactamente con el registrado.
func (uc *AuthUseCase) verify(ctx context.Context, email, secret string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	user, err := uc.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Email != email || user.Password == "" {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, nil
		}
		return nil, err
	}
	return user.Sanitized(), nil
}

func (uc *AuthUseCase) logAccess(ctx context.Context, u *entity.User) error {
	actor := entity.ActorOf(u)
	return uc.store.LogActivity(ctx, entity.ActivityLog{
		UserID:   actor.UserID,
		UserName: actor.Name,
		Action:   entity.ActionLogin,
		Details:  detailLogin,
		SedeID:   actor.SedeID,
	})
}

// scan ejecuta el escaneo sin bloquear el login si falla.
func (uc *AuthUseCase) scan(ctx context.Context, sedeID string) int {
	if uc.scanner == nil {
		return 0
	}
	res, err := uc.scanner.Scan(ctx, sedeID)
	if err != nil {
		uc.log.Warn().Err(err).Str("sede_id", sedeID).Msg("escaneo de vencimientos tras login")
		return 0
	}
	return res.Inserted
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		OfficeName:  u.OfficeName,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		SedeID:      u.SedeID,
		CreatedAt:   u.CreatedAt,
	}
}
