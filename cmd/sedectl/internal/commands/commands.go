// Package commands implementa los subcomandos de sedectl sobre el
// almacenamiento configurado (sqlite por defecto, o postgres).
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/gestione-sindacale/internal/application/auth"
	"github.com/jhoicas/gestione-sindacale/internal/application/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/application/tenantstore"
	domaindeadline "github.com/jhoicas/gestione-sindacale/internal/domain/deadline"
	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/storage"
	"github.com/jhoicas/gestione-sindacale/pkg/config"
	"github.com/jhoicas/gestione-sindacale/pkg/logger"
)

// Globals flags comunes a todos los subcomandos.
type Globals struct {
	Debug   bool
	Version string
}

// env dependencias abiertas para un subcomando.
type env struct {
	store   *tenantstore.Store
	scanner *deadline.Scanner
	auth    *auth.AuthUseCase
	out     io.Writer
	close   func()
}

var errNoSession = errors.New("nessuna sessione attiva: eseguire sedectl login")

// loadConfig es reemplazable en tests.
var loadConfig = config.Load

func open(ctx context.Context, g *Globals) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := newLogger(g)

	collections, closeFn, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		return nil, err
	}
	store := tenantstore.New(collections,
		tenantstore.WithLogger(log.Component("tenantstore")),
		tenantstore.WithLogCap(cfg.Activity.LogCap),
		tenantstore.WithRetryAttempts(cfg.Storage.RetryAttempts),
	)
	scanner := deadline.NewScanner(store, domaindeadline.Policy{
		Window:       cfg.Deadline.WindowDays,
		DangerWithin: cfg.Deadline.DangerDays,
		Location:     cfg.App.Location(),
	}, nil, log.Component("deadline"))

	authUC := auth.NewAuthUseCase(store, scanner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Component("auth"))

	return &env{
		store:   store,
		scanner: scanner,
		auth:    authUC,
		out:     os.Stdout,
		close:   closeFn,
	}, nil
}

func newLogger(g *Globals) *logger.Logger {
	level := "warn"
	if g.Debug {
		level = "debug"
	}
	return logger.New(logger.Config{Env: "development", Level: level, Out: os.Stderr})
}

// run abre el entorno, ejecuta fn y libera el almacenamiento.
func run(ctx context.Context, g *Globals, fn func(context.Context, *env) error) error {
	e, err := open(ctx, g)
	if err != nil {
		return err
	}
	defer e.close()
	return fn(ctx, e)
}

// sessionSede sede explícita o, si falta, la de la sesión actual.
func (e *env) sessionSede(ctx context.Context, sede string) (string, error) {
	if sede != "" {
		return sede, nil
	}
	u, err := e.store.CurrentSession(ctx)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", errNoSession
	}
	return u.SedeID, nil
}
