package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/usecase"
)

const (
	SummarySheet  = "Summary"
	FindingsSheet = "Findings"
)

var findingsHeader = []any{
	"Kind", "Source", "Row", "Player", "Team", "PlayerId", "Column", "Value", "Roster Salary", "Keeper Salary",
}

// ExcelReporter writes a run's summary and findings to an .xlsx workbook.
type ExcelReporter struct{}

func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

func (r *ExcelReporter) WriteReport(ctx context.Context, path string, rep usecase.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return err
	}

	summary := [][]any{
		{"Run ID", rep.RunID},
		{"Generated At", rep.GeneratedAt.Format(time.RFC3339)},
		{"Total rows", rep.Summary.TotalRows},
		{"Rows with salary > 0", rep.Summary.PositiveRows},
		{"Rows with salary = 0", rep.Summary.ZeroRows},
		{"Updated rows", rep.Summary.UpdatedRows},
		{"Findings", len(rep.Findings)},
	}
	if err := setRows(f, SummarySheet, summary); err != nil {
		return err
	}

	if _, err := f.NewSheet(FindingsSheet); err != nil {
		return err
	}

	rows := make([][]any, 0, len(rep.Findings)+1)
	rows = append(rows, findingsHeader)
	for _, fd := range rep.Findings {
		rows = append(rows, []any{
			string(fd.Kind), string(fd.Source), fd.Row, fd.Player, fd.Team, fd.PlayerID,
			fd.Column, fd.Value, salaryCell(fd.Expected), salaryCell(fd.Actual),
		})
	}
	if err := setRows(f, FindingsSheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(FindingsSheet, "A", "J", 18); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}

	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func salaryCell(d decimal.NullDecimal) any {
	if !d.Valid {
		return ""
	}
	return d.Decimal.InexactFloat64()
}
