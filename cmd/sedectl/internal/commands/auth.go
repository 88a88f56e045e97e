package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
)

// RegisterCmd registra un operador.
type RegisterCmd struct {
	Email    string `help:"Email dell'operatore" required:""`
	Password string `help:"Password" required:"" env:"SEDECTL_PASSWORD"`
	Sede     string `help:"Nome della sede" required:""`
	Nome     string `help:"Nome visualizzato dell'operatore" required:""`
}

func (r *RegisterCmd) Run(ctx context.Context, g *Globals) error {
	return run(ctx, g, r.exec)
}

func (r *RegisterCmd) exec(ctx context.Context, e *env) error {
	res, err := e.auth.Register(ctx, dto.RegisterRequest{
		Email:       r.Email,
		Password:    r.Password,
		OfficeName:  r.Sede,
		DisplayName: r.Nome,
	})
	if err != nil {
		return err
	}
	if res.OfficeCreated {
		fmt.Fprintf(e.out, "Sede %q creata (%s)\n", res.User.OfficeName, res.User.SedeID)
	}
	fmt.Fprintf(e.out, "Operatore %s registrato come %s\n", res.User.Email, res.User.Role)
	return nil
}

// LoginCmd abre la sesión local y ejecuta el escaneo de la sede.
type LoginCmd struct {
	Email    string `help:"Email dell'operatore" required:""`
	Password string `help:"Password" required:"" env:"SEDECTL_PASSWORD"`
}

func (l *LoginCmd) Run(ctx context.Context, g *Globals) error {
	return run(ctx, g, l.exec)
}

func (l *LoginCmd) exec(ctx context.Context, e *env) error {
	u, err := e.auth.Authenticate(ctx, l.Email, l.Password)
	if err != nil {
		return err
	}
	if u == nil {
		return errors.New("credenziali non valide")
	}
	res, err := e.scanner.Scan(ctx, u.SedeID)
	if err != nil {
		return fmt.Errorf("scansione scadenze: %w", err)
	}
	fmt.Fprintf(e.out, "Benvenuto %s (%s)\n", u.DisplayName, u.Role)
	fmt.Fprintf(e.out, "Promemoria nuovi: %d\n", res.Inserted)
	return nil
}

// LogoutCmd cierra la sesión local.
type LogoutCmd struct{}

func (l *LogoutCmd) Run(ctx context.Context, g *Globals) error {
	return run(ctx, g, l.exec)
}

func (l *LogoutCmd) exec(ctx context.Context, e *env) error {
	if err := e.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Sessione chiusa")
	return nil
}

// WhoamiCmd muestra el operador de la sesión local.
type WhoamiCmd struct{}

func (w *WhoamiCmd) Run(ctx context.Context, g *Globals) error {
	return run(ctx, g, w.exec)
}

func (w *WhoamiCmd) exec(ctx context.Context, e *env) error {
	u, err := e.auth.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		return errNoSession
	}
	fmt.Fprintf(e.out, "%s <%s> %s sede=%s (%s)\n", u.DisplayName, u.Email, u.Role, u.OfficeName, u.SedeID)
	return nil
}
