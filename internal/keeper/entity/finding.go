package entity

import "github.com/shopspring/decimal"

// Finding is a data-quality problem that is reported but never fatal.
type Finding struct {
	Kind     FindingKind
	Source   Source
	Row      int // 1-based data row, header excluded; 0 when not row specific
	Player   string
	Team     string
	PlayerID string
	Column   string
	Value    string

	// Expected and Actual are set for salary mismatches: roster vs keeper.
	Expected decimal.NullDecimal
	Actual   decimal.NullDecimal
}

// Summary holds the counts logged at the end of a run.
//
// UpdatedRows is the change in rows with a positive salary before and after
// propagation, not a per-row change count.
type Summary struct {
	TotalRows    int
	PositiveRows int
	ZeroRows     int
	UpdatedRows  int
}
