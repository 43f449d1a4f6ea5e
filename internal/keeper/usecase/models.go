package usecase

import (
	"time"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/entity"
)

// Columns names the header cells the pipeline depends on.
type Columns struct {
	Player            string `validate:"required"`
	PlayerID          string `validate:"required"`
	Team              string `validate:"required"`
	RosterSalary      string `validate:"required"`
	KeeperPriorSalary string `validate:"required"`
	KeeperNextSalary  string `validate:"required"`
	ImportSalary      string `validate:"required"`
}

// DefaultColumns returns the header names used by the league's exports.
func DefaultColumns() Columns {
	return Columns{
		Player:            "Player",
		PlayerID:          "PlayerId",
		Team:              "Team",
		RosterSalary:      "2024_Salary",
		KeeperPriorSalary: "24_Salary",
		KeeperNextSalary:  "25_Salary",
		ImportSalary:      "2025_Salary",
	}
}

// DefaultTolerance is the largest prior-year salary difference still
// considered a match.
const DefaultTolerance = 0.01

type Request struct {
	RosterPath  string `validate:"required"`
	KeepersPath string `validate:"required"`
	ImportPath  string `validate:"required"`
	OutputPath  string `validate:"required,nefield=RosterPath,nefield=KeepersPath,nefield=ImportPath"`
	ReportPath  string `validate:"omitempty,nefield=OutputPath,nefield=RosterPath,nefield=KeepersPath,nefield=ImportPath"`
	Columns     Columns
	Tolerance   float64 `validate:"gte=0"`
}

type Result struct {
	RunID      string
	Summary    entity.Summary
	Findings   []entity.Finding
	OutputPath string
	ReportPath string
}

// Count returns how many findings of the given kind the run produced.
func (r Result) Count(kind entity.FindingKind) int {
	n := 0
	for _, f := range r.Findings {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// Report is what a Reporter receives after the output file is written.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Summary     entity.Summary
	Findings    []entity.Finding
}
