package usecase

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/entity"
)

func newImports(ids ...string) []entity.ImportRecord {
	out := make([]entity.ImportRecord, len(ids))
	for i, id := range ids {
		out[i] = entity.ImportRecord{Row: i + 1, PlayerID: id, NextSalary: decimal.NewNullDecimal(decimal.Zero)}
	}
	return out
}

func TestBuildSalaryMapSkipsUnresolved(t *testing.T) {
	t.Parallel()

	keepers := []entity.KeeperRecord{
		{Row: 1, Player: "Alice Jones", PlayerID: strPtr("101"), NextSalary: ParseSalary("$6,500.50")},
		{Row: 2, Player: "Bob Unknown", NextSalary: ParseSalary("$1,000")},
		{Row: 3, Player: "Alice Twin", PlayerID: strPtr("101"), NextSalary: ParseSalary("$7,000")},
	}

	salaries, dups := BuildSalaryMap(keepers)
	if len(salaries) != 1 {
		t.Fatalf("expected only resolved ids in map, got %v", salaries)
	}
	if got := salaries["101"].Decimal.String(); got != "7000" {
		t.Fatalf("expected last write to win, got %s", got)
	}
	if len(dups) != 1 || dups[0].Kind != entity.FindingDuplicateKeeperID || dups[0].Row != 3 {
		t.Fatalf("unexpected duplicate findings: %+v", dups)
	}
}

func TestPropagate(t *testing.T) {
	t.Parallel()

	imports := newImports("101", "102", "103", "104")
	salaries := map[string]decimal.NullDecimal{
		"101": ParseSalary("6500.50"),
		"103": ParseSalary("1234.567"),
		"104": ParseSalary("0"),
		"999": ParseSalary("50"),
	}

	summary, missing := Propagate(imports, salaries)
	if len(missing) != 0 {
		t.Fatalf("unexpected missing findings: %+v", missing)
	}

	want := map[string]string{"101": "6500.50", "102": "0.00", "103": "1234.57", "104": "0.00"}
	for _, rec := range imports {
		if got := rec.NextSalary.Decimal.StringFixed(2); got != want[rec.PlayerID] {
			t.Fatalf("salary for %s = %s, want %s", rec.PlayerID, got, want[rec.PlayerID])
		}
	}
	if !imports[2].NextSalary.Decimal.Equal(decimal.RequireFromString("1234.57")) {
		t.Fatalf("expected stored value rounded to 2 decimals, got %s", imports[2].NextSalary.Decimal)
	}

	wantSummary := entity.Summary{TotalRows: 4, PositiveRows: 2, ZeroRows: 2, UpdatedRows: 2}
	if summary != wantSummary {
		t.Fatalf("summary = %+v, want %+v", summary, wantSummary)
	}
}

func TestPropagateRoundsHalfToEven(t *testing.T) {
	t.Parallel()

	imports := newImports("101", "102", "103", "104")
	salaries := map[string]decimal.NullDecimal{
		"101": ParseSalary("0.125"),
		"102": ParseSalary("0.135"),
		"103": ParseSalary("$1,000.005"),
		"104": ParseSalary("1.126"),
	}

	Propagate(imports, salaries)

	want := []string{"0.12", "0.14", "1000.00", "1.13"}
	for i, rec := range imports {
		if got := rec.NextSalary.Decimal.StringFixed(2); got != want[i] {
			t.Fatalf("salary for %s = %s, want %s", rec.PlayerID, got, want[i])
		}
	}
}

func TestPropagateResetsPriorValues(t *testing.T) {
	t.Parallel()

	imports := newImports("101", "102")
	imports[1].NextSalary = decimal.NewNullDecimal(decimal.NewFromInt(300))

	summary, _ := Propagate(imports, map[string]decimal.NullDecimal{"101": ParseSalary("10")})

	if !imports[1].NextSalary.Decimal.IsZero() {
		t.Fatalf("expected unmatched row reset to zero, got %s", imports[1].NextSalary.Decimal)
	}
	if summary.UpdatedRows != 1 {
		t.Fatalf("expected 1 updated row, got %d", summary.UpdatedRows)
	}
}

func TestPropagateIsIdempotent(t *testing.T) {
	t.Parallel()

	salaries := map[string]decimal.NullDecimal{"101": ParseSalary("6500.50"), "102": ParseSalary("12")}

	first := newImports("101", "102", "103")
	s1, _ := Propagate(first, salaries)

	second := append([]entity.ImportRecord(nil), first...)
	s2, _ := Propagate(second, salaries)

	if s1 != s2 {
		t.Fatalf("summaries differ: %+v vs %+v", s1, s2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("records differ after second run")
	}
}

func TestPropagateMissingNextSalary(t *testing.T) {
	t.Parallel()

	imports := newImports("101", "102")
	summary, missing := Propagate(imports, map[string]decimal.NullDecimal{"101": {}})

	if imports[0].NextSalary.Valid {
		t.Fatalf("expected missing salary to stay missing")
	}
	if len(missing) != 1 || missing[0].PlayerID != "101" || missing[0].Kind != entity.FindingMissingNextSalary {
		t.Fatalf("unexpected findings: %+v", missing)
	}

	want := entity.Summary{TotalRows: 2, PositiveRows: 0, ZeroRows: 1, UpdatedRows: 0}
	if summary != want {
		t.Fatalf("summary = %+v, want %+v", summary, want)
	}
}
