package app

import (
	"github.com/rroethle7474/JCL2025-Roster/internal/keeper"
)

func (a *App) initModules() {
	a.keeper = keeper.New(keeper.Dependency{
		Log: a.logger,
		ID:  a.uuid,
	})
}
