package commands

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/storage"
)

// ScanCmd ejecuta el escaneo de vencimientos.
type ScanCmd struct {
	Sede string `help:"Id della sede (default: sede della sessione attiva)"`
}

func (s *ScanCmd) Run(ctx context.Context, g *Globals) error {
	return run(ctx, g, s.exec)
}

func (s *ScanCmd) exec(ctx context.Context, e *env) error {
	sedeID, err := e.sessionSede(ctx, s.Sede)
	if err != nil {
		return err
	}
	res, err := e.scanner.Scan(ctx, sedeID)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Sede %s: %d scadenze nella finestra, %d promemoria nuovi\n", sedeID, res.Derived, res.Inserted)
	return nil
}

// MigrateCmd aplica las migraciones del almacenamiento configurado.
type MigrateCmd struct{}

func (m *MigrateCmd) Run(ctx context.Context, g *Globals) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	_, closeFn, err := storage.Open(ctx, cfg, newLogger(g).Component("storage"))
	if err != nil {
		return err
	}
	closeFn()
	fmt.Printf("Storage %s aggiornato\n", cfg.Storage.Driver)
	return nil
}
