package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/entity"
)

// BuildSalaryMap maps identifier to next-year salary for every resolved
// keeper. A repeated identifier keeps the last value and is returned as a
// DUPLICATE_KEEPER_ID finding.
func BuildSalaryMap(keepers []entity.KeeperRecord) (map[string]decimal.NullDecimal, []entity.Finding) {
	salaries := make(map[string]decimal.NullDecimal, len(keepers))
	var dups []entity.Finding

	for _, k := range keepers {
		if !k.Resolved() {
			continue
		}

		if _, ok := salaries[*k.PlayerID]; ok {
			dups = append(dups, entity.Finding{
				Kind:     entity.FindingDuplicateKeeperID,
				Source:   entity.SourceKeepers,
				Row:      k.Row,
				Player:   k.Player,
				Team:     k.Team,
				PlayerID: *k.PlayerID,
			})
		}
		salaries[*k.PlayerID] = k.NextSalary
	}

	return salaries, dups
}

// Propagate resets every import salary to zero, then sets rows whose
// identifier is in salaries to the mapped value rounded half to even at two
// decimals.
//
// UpdatedRows in the returned summary is the number of positive rows after
// the update minus the number before it. A mapped salary that is missing
// stays missing and is reported as MISSING_NEXT_SALARY.
func Propagate(imports []entity.ImportRecord, salaries map[string]decimal.NullDecimal) (entity.Summary, []entity.Finding) {
	for i := range imports {
		imports[i].NextSalary = decimal.NewNullDecimal(decimal.Zero)
	}

	before := countPositive(imports)

	var missing []entity.Finding
	for i := range imports {
		salary, ok := salaries[imports[i].PlayerID]
		if !ok {
			continue
		}

		if !salary.Valid {
			imports[i].NextSalary = decimal.NullDecimal{}
			missing = append(missing, entity.Finding{
				Kind:     entity.FindingMissingNextSalary,
				Source:   entity.SourceImport,
				Row:      imports[i].Row,
				PlayerID: imports[i].PlayerID,
			})
			continue
		}

		imports[i].NextSalary = decimal.NewNullDecimal(salary.Decimal.RoundBank(2))
	}

	summary := Summarize(imports)
	summary.UpdatedRows = summary.PositiveRows - before

	return summary, missing
}

// Summarize counts total, positive and zero salary rows. Missing salaries
// count toward the total only.
func Summarize(imports []entity.ImportRecord) entity.Summary {
	s := entity.Summary{TotalRows: len(imports)}
	for _, rec := range imports {
		if !rec.NextSalary.Valid {
			continue
		}
		switch {
		case rec.NextSalary.Decimal.IsPositive():
			s.PositiveRows++
		case rec.NextSalary.Decimal.IsZero():
			s.ZeroRows++
		}
	}

	return s
}

func countPositive(imports []entity.ImportRecord) int {
	return Summarize(imports).PositiveRows
}
