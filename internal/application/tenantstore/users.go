package tenantstore

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/domain/entity"
	"github.com/jhoicas/gestione-sindacale/internal/domain/repository"
)

var officeFolder = cases.Fold()

// NormalizeOfficeName clave de comparación de nombres de sede: sin espacios
// sobrantes y con plegado de mayúsculas Unicode ("Sede  ROMA " == "sede roma").
func NormalizeOfficeName(name string) string {
	return officeFolder.String(strings.Join(strings.Fields(name), " "))
}

// ListUsers operadores de la sede, sin credenciales.
func (s *Store) ListUsers(ctx context.Context, sedeID string) ([]entity.User, error) {
	all, _, err := load[[]entity.User](ctx, s, repository.KeyUsers)
	if err != nil {
		return nil, err
	}
	out := make([]entity.User, 0)
	for i := range all {
		if all[i].SedeID == sedeID {
			out = append(out, *all[i].Sanitized())
		}
	}
	return out, nil
}

// FindUserByEmail busca por email (sin distinguir mayúsculas). Devuelve el
// registro completo, credencial incluida; nil si no existe.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	all, _, err := load[[]entity.User](ctx, s, repository.KeyUsers)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	for i := range all {
		if strings.EqualFold(all[i].Email, email) {
			return &all[i], nil
		}
	}
	return nil, nil
}

// AddUser agrega el usuario y registra la actividad "Registrazione".
// Un email ya presente devuelve domain.ErrEmailAlreadyExists.
func (s *Store) AddUser(ctx context.Context, u *entity.User) error {
	if u.SedeID == "" {
		return domain.ErrInvalidInput
	}
	if u.ID == "" {
		u.ID = s.newID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	err := update(ctx, s, repository.KeyUsers, func(all []entity.User) ([]entity.User, bool, error) {
		for i := range all {
			if strings.EqualFold(all[i].Email, u.Email) {
				return nil, false, domain.ErrEmailAlreadyExists
			}
		}
		return append(all, *u), true, nil
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("sede_id", u.SedeID).Str("user_id", u.ID).Str("role", u.Role).Msg("usuario registrado")
	return s.logActivity(ctx, entity.ActorOf(u), entity.ActionRegister, "Nuovo account creato per la sede: "+u.OfficeName)
}

// ResolveOffice busca la sede por nombre normalizado y la crea con un tenant id
// nuevo si no existe. created indica si se creó en esta llamada.
func (s *Store) ResolveOffice(ctx context.Context, name string) (office *entity.Office, created bool, err error) {
	norm := NormalizeOfficeName(name)
	if norm == "" {
		return nil, false, domain.ErrInvalidInput
	}
	candidate := entity.Office{
		ID:             s.newTenantID(),
		Name:           strings.Join(strings.Fields(name), " "),
		NormalizedName: norm,
		CreatedAt:      s.now(),
	}
	err = update(ctx, s, repository.KeyOffices, func(all []entity.Office) ([]entity.Office, bool, error) {
		for i := range all {
			if all[i].NormalizedName == norm {
				found := all[i]
				office, created = &found, false
				return all, false, nil
			}
		}
		office, created = &candidate, true
		return append(all, candidate), true, nil
	})
	if err != nil {
		return nil, false, err
	}
	return office, created, nil
}

// GetOffice sede por id; nil si no existe.
func (s *Store) GetOffice(ctx context.Context, id string) (*entity.Office, error) {
	all, _, err := load[[]entity.Office](ctx, s, repository.KeyOffices)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// SetCurrentSession guarda el usuario (ya sin credencial) como sesión actual.
func (s *Store) SetCurrentSession(ctx context.Context, u *entity.User) error {
	session := u.Sanitized()
	return update(ctx, s, repository.KeyCurrentSession, func(*entity.User) (*entity.User, bool, error) {
		return session, true, nil
	})
}

// CurrentSession sesión actual; nil si no hay.
func (s *Store) CurrentSession(ctx context.Context) (*entity.User, error) {
	u, _, err := load[*entity.User](ctx, s, repository.KeyCurrentSession)
	return u, err
}

// ClearSession elimina la sesión actual.
func (s *Store) ClearSession(ctx context.Context) error {
	return update(ctx, s, repository.KeyCurrentSession, func(cur *entity.User) (*entity.User, bool, error) {
		return nil, cur != nil, nil
	})
}

// GetUser operador de la sede por id, sin credencial; nil si no existe.
func (s *Store) GetUser(ctx context.Context, sedeID, id string) (*entity.User, error) {
	all, _, err := load[[]entity.User](ctx, s, repository.KeyUsers)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id && all[i].SedeID == sedeID {
			return all[i].Sanitized(), nil
		}
	}
	return nil, nil
}

// SetUserPassword reemplaza el hash de la credencial. ErrNotFound si el id no existe.
func (s *Store) SetUserPassword(ctx context.Context, userID, hash string) error {
	return update(ctx, s, repository.KeyUsers, func(all []entity.User) ([]entity.User, bool, error) {
		for i := range all {
			if all[i].ID == userID {
				all[i].Password = hash
				return all, true, nil
			}
		}
		return nil, false, domain.ErrNotFound
	})
}
