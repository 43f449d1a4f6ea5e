package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/entity"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkgerror"
)

var currencyStripper = strings.NewReplacer("$", "", ",", "")

// ParseSalary converts a currency formatted value such as "$12,345.00" into a
// decimal. Every "$" and "," is removed before parsing. Values that still do
// not parse come back with Valid set to false.
func ParseSalary(raw string) decimal.NullDecimal {
	cleaned := strings.TrimSpace(currencyStripper.Replace(raw))
	if cleaned == "" {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(d)
}

// normalizeSalary parses one cell and returns a finding when a non-blank
// value could not be read.
func normalizeSalary(src entity.Source, row int, column, raw string) (decimal.NullDecimal, *entity.Finding) {
	value := ParseSalary(raw)
	if value.Valid || strings.TrimSpace(raw) == "" {
		return value, nil
	}

	return value, &entity.Finding{
		Kind:   entity.FindingUnparseableSalary,
		Source: src,
		Row:    row,
		Column: column,
		Value:  raw,
	}
}

func requireColumns(path string, table entity.Table, names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		idx[i] = table.ColumnIndex(name)
		if idx[i] < 0 {
			return nil, pkgerror.NewInvalidFormat(path, fmt.Errorf("missing column %q", name))
		}
	}

	return idx, nil
}

// cell returns row[i], or "" when the row stops short of column i.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseRoster(path string, table entity.Table, cols Columns) ([]entity.RosterRecord, []entity.Finding, error) {
	idx, err := requireColumns(path, table, cols.Player, cols.PlayerID, cols.RosterSalary)
	if err != nil {
		return nil, nil, err
	}

	var findings []entity.Finding
	records := make([]entity.RosterRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		salary, f := normalizeSalary(entity.SourceRoster, i+1, cols.RosterSalary, cell(row, idx[2]))
		if f != nil {
			f.Player = cell(row, idx[0])
			f.PlayerID = cell(row, idx[1])
			findings = append(findings, *f)
		}

		records = append(records, entity.RosterRecord{
			Row:         i + 1,
			Player:      cell(row, idx[0]),
			PlayerID:    cell(row, idx[1]),
			PriorSalary: salary,
		})
	}

	return records, findings, nil
}

func parseKeepers(path string, table entity.Table, cols Columns) ([]entity.KeeperRecord, []entity.Finding, error) {
	idx, err := requireColumns(path, table, cols.Player, cols.Team, cols.KeeperPriorSalary, cols.KeeperNextSalary)
	if err != nil {
		return nil, nil, err
	}

	var findings []entity.Finding
	records := make([]entity.KeeperRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		rec := entity.KeeperRecord{
			Row:    i + 1,
			Player: cell(row, idx[0]),
			Team:   cell(row, idx[1]),
		}

		var f *entity.Finding
		rec.PriorSalary, f = normalizeSalary(entity.SourceKeepers, rec.Row, cols.KeeperPriorSalary, cell(row, idx[2]))
		if f != nil {
			f.Player, f.Team = rec.Player, rec.Team
			findings = append(findings, *f)
		}

		rec.NextSalary, f = normalizeSalary(entity.SourceKeepers, rec.Row, cols.KeeperNextSalary, cell(row, idx[3]))
		if f != nil {
			f.Player, f.Team = rec.Player, rec.Team
			findings = append(findings, *f)
		}

		records = append(records, rec)
	}

	return records, findings, nil
}

func parseImports(path string, table entity.Table, cols Columns) ([]entity.ImportRecord, error) {
	idx, err := requireColumns(path, table, cols.PlayerID)
	if err != nil {
		return nil, err
	}

	records := make([]entity.ImportRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		records = append(records, entity.ImportRecord{
			Row:        i + 1,
			PlayerID:   cell(row, idx[0]),
			NextSalary: decimal.NewNullDecimal(decimal.Zero),
		})
	}

	return records, nil
}

// renderImport copies the import table and writes each record's salary into
// the salary column, appending the column when the header lacks it. Salaries
// are formatted with exactly two decimals; missing values become empty cells.
func renderImport(table entity.Table, records []entity.ImportRecord, salaryColumn string) entity.Table {
	header := append([]string(nil), table.Header...)
	col := table.ColumnIndex(salaryColumn)
	if col < 0 {
		header = append(header, salaryColumn)
		col = len(header) - 1
	}

	rows := make([][]string, len(table.Rows))
	for i, src := range table.Rows {
		row := make([]string, len(header))
		copy(row, src)

		row[col] = ""
		if i < len(records) && records[i].NextSalary.Valid {
			row[col] = records[i].NextSalary.Decimal.StringFixed(2)
		}
		rows[i] = row
	}

	return entity.Table{Header: header, Rows: rows}
}
