package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/usecase"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkgconfig"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkgerror"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkglog"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkguid"
)

const (
	envPrefix  = "KEEPERSYNC"
	configName = "keepersync"

	keyRoster    = "input.roster"
	keyKeepers   = "input.keepers"
	keyImport    = "input.import"
	keyOutput    = "output.path"
	keyReport    = "report.path"
	keyTolerance = "validation.tolerance"
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
)

// flagKeys maps config keys to the command line flags that override them.
var flagKeys = map[string]string{
	keyRoster:    "roster",
	keyKeepers:   "keepers",
	keyImport:    "import",
	keyOutput:    "output",
	keyReport:    "report",
	keyTolerance: "tolerance",
	keyLogLevel:  "log-level",
	keyLogFormat: "log-format",
}

func defaults() map[string]any {
	cols := usecase.DefaultColumns()
	return map[string]any{
		keyRoster:                     "2024-JCL-Player-List.csv",
		keyKeepers:                    "2025-JCL-Keeper-Eligible-List.csv",
		keyImport:                     "2025-JCL-Import.csv",
		keyOutput:                     "2025-JCL-Import-Final.csv",
		keyReport:                     "",
		keyTolerance:                  usecase.DefaultTolerance,
		keyLogLevel:                   "info",
		keyLogFormat:                  "json",
		"columns.player":              cols.Player,
		"columns.player_id":           cols.PlayerID,
		"columns.team":                cols.Team,
		"columns.roster_salary":       cols.RosterSalary,
		"columns.keeper_prior_salary": cols.KeeperPriorSalary,
		"columns.keeper_next_salary":  cols.KeeperNextSalary,
		"columns.import_salary":       cols.ImportSalary,
	}
}

func (a *App) initConfig(opts Options) error {
	if err := pkgconfig.LoadDotEnv(opts.EnvFiles...); err != nil {
		slog.Error("failed to load env file", "error", err)
		return pkgerror.NewInvalidInput(err)
	}

	cfg, err := pkgconfig.NewViper(pkgconfig.Options{
		File:        opts.ConfigFile,
		SearchName:  configName,
		SearchPaths: []string{"."},
		EnvPrefix:   envPrefix,
		FlagSet:     opts.Flags,
		Flags:       flagKeys,
		Defaults:    defaults(),
	})
	if err != nil {
		slog.Error("failed to init config", "error", err)
		return pkgerror.NewInvalidInput(err)
	}

	a.config = cfg
	return nil
}

func (a *App) initLogging(w io.Writer) {
	a.logger = pkglog.InitLogging(pkglog.Options{
		Level:  a.config.GetString(keyLogLevel),
		Format: a.config.GetString(keyLogFormat),
		Writer: w,
	})
}

func (a *App) initLibraries() {
	a.uuid = pkguid.NewUUID("")
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
