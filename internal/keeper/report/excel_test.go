package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/entity"
	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/usecase"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "findings.xlsx")
	rep := usecase.Report{
		RunID:       "run-1",
		GeneratedAt: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
		Summary:     entity.Summary{TotalRows: 4, PositiveRows: 2, ZeroRows: 2, UpdatedRows: 2},
		Findings: []entity.Finding{
			{Kind: entity.FindingUnresolvedPlayer, Source: entity.SourceKeepers, Row: 2, Player: "Bob Unknown", Team: "Bar"},
			{
				Kind: entity.FindingSalaryMismatch, Source: entity.SourceKeepers, Row: 3, Player: "Carl Ng", PlayerID: "102",
				Expected: decimal.NewNullDecimal(decimal.RequireFromString("5000")),
				Actual:   decimal.NewNullDecimal(decimal.RequireFromString("5050")),
			},
		},
	}

	require.NoError(t, NewExcelReporter().WriteReport(context.Background(), path, rep))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, FindingsSheet}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Run ID", "run-1"}, summary[0])
	assert.Equal(t, []string{"Updated rows", "2"}, summary[5])

	rows, err := f.GetRows(FindingsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Kind", rows[0][0])
	require.GreaterOrEqual(t, len(rows[1]), 5)
	assert.Equal(t, []string{"UNRESOLVED_PLAYER", "KEEPERS", "2", "Bob Unknown", "Bar"}, rows[1][:5])
	require.Len(t, rows[2], 10)
	assert.Equal(t, "SALARY_MISMATCH", rows[2][0])
	assert.Equal(t, "5000", rows[2][8])
	assert.Equal(t, "5050", rows[2][9])
}

func TestWriteReportBadPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "findings.xlsx")
	err := NewExcelReporter().WriteReport(context.Background(), path, usecase.Report{})
	assert.Error(t, err)
}
