package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/usecase"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkgconfig"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkguid"
)

type App struct {
	// configuration
	config pkgconfig.Config

	// libraries
	logger *slog.Logger
	uuid   pkguid.StringID

	// modules
	keeper *usecase.Usecase

	//
	closerFn map[string]func(context.Context) error
}

// Options carries what the command line hands to New.
type Options struct {
	ConfigFile string
	EnvFiles   []string
	Flags      *pflag.FlagSet
	LogWriter  io.Writer
}

func New(opts Options) (*App, error) {
	app := &App{}

	if err := app.initConfig(opts); err != nil {
		return nil, err
	}
	app.initLogging(opts.LogWriter)
	app.initLibraries()
	app.initModules()
	app.initClosers()

	return app, nil
}

// Run performs one reconciliation with the loaded configuration.
func (a *App) Run(ctx context.Context) (usecase.Result, error) {
	res, err := a.keeper.Reconcile(ctx, a.request())
	if err != nil {
		return res, err
	}

	a.logger.InfoContext(ctx, "reconciliation finished",
		"run_id", res.RunID,
		"findings", len(res.Findings),
		"output", res.OutputPath,
		"report", res.ReportPath,
	)

	return res, nil
}

func (a *App) request() usecase.Request {
	cfg := a.config
	return usecase.Request{
		RosterPath:  cfg.GetString(keyRoster),
		KeepersPath: cfg.GetString(keyKeepers),
		ImportPath:  cfg.GetString(keyImport),
		OutputPath:  cfg.GetString(keyOutput),
		ReportPath:  cfg.GetString(keyReport),
		Columns: usecase.Columns{
			Player:            cfg.GetString("columns.player"),
			PlayerID:          cfg.GetString("columns.player_id"),
			Team:              cfg.GetString("columns.team"),
			RosterSalary:      cfg.GetString("columns.roster_salary"),
			KeeperPriorSalary: cfg.GetString("columns.keeper_prior_salary"),
			KeeperNextSalary:  cfg.GetString("columns.keeper_next_salary"),
			ImportSalary:      cfg.GetString("columns.import_salary"),
		},
		Tolerance: cfg.GetFloat(keyTolerance),
	}
}

func (a *App) Stop(ctx context.Context) {
	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			a.logger.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}
}
