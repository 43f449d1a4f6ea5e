package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/entity"
)

// ValidateSalaries compares each resolved keeper's prior-year salary with the
// roster row carrying the same identifier (the first such row). Differences
// larger than tolerance are returned as SALARY_MISMATCH findings. Unresolved
// keepers and rows where either salary is missing are skipped. No value is
// modified.
func ValidateSalaries(keepers []entity.KeeperRecord, roster []entity.RosterRecord, tolerance decimal.Decimal) []entity.Finding {
	byID := make(map[string]entity.RosterRecord, len(roster))
	for _, rec := range roster {
		if _, ok := byID[rec.PlayerID]; !ok {
			byID[rec.PlayerID] = rec
		}
	}

	var mismatches []entity.Finding
	for _, k := range keepers {
		if !k.Resolved() {
			continue
		}

		r, ok := byID[*k.PlayerID]
		if !ok || !r.PriorSalary.Valid || !k.PriorSalary.Valid {
			continue
		}

		if r.PriorSalary.Decimal.Sub(k.PriorSalary.Decimal).Abs().GreaterThan(tolerance) {
			mismatches = append(mismatches, entity.Finding{
				Kind:     entity.FindingSalaryMismatch,
				Source:   entity.SourceKeepers,
				Row:      k.Row,
				Player:   k.Player,
				Team:     k.Team,
				PlayerID: *k.PlayerID,
				Expected: r.PriorSalary,
				Actual:   k.PriorSalary,
			})
		}
	}

	return mismatches
}
