package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/jhoicas/gestione-sindacale/cmd/sedectl/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Register commands.RegisterCmd `cmd:"" help:"Registra un operatore (crea la sede se non esiste)"`
		Login    commands.LoginCmd    `cmd:"" help:"Apre la sessione locale ed esegue la scansione delle scadenze"`
		Logout   commands.LogoutCmd   `cmd:"" help:"Chiude la sessione locale"`
		Whoami   commands.WhoamiCmd   `cmd:"" help:"Mostra l'operatore della sessione locale"`
		Scan     commands.ScanCmd     `cmd:"" help:"Esegue la scansione delle scadenze di una sede"`
		Migrate  commands.MigrateCmd  `cmd:"" help:"Applica le migrazioni dello storage configurato"`
		Debug    bool                 `help:"Log di debug."`
		Version  kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("sedectl"),
		kong.Description("Strumento da riga di comando per la gestione delle sedi."),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
