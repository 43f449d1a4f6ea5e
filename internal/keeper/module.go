package keeper

import (
	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/report"
	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/store"
	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/usecase"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkguid"
)

type Dependency struct {
	Log usecase.Diagnostics
	ID  pkguid.StringID
}

// New wires the reconciliation usecase to the CSV store and the Excel
// findings reporter.
func New(dep Dependency) *usecase.Usecase {
	if dep.ID == nil {
		dep.ID = pkguid.NewUUID("")
	}

	return usecase.New(usecase.Dependency{
		Store:    store.NewCSVStore(),
		Reporter: report.NewExcelReporter(),
		Log:      dep.Log,
		ID:       dep.ID,
	})
}
