package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime/debug"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/rroethle7474/JCL2025-Roster/internal/keeper/entity"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkgerror"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkglog"
	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkguid"
)

type TableStore interface {
	ReadTable(ctx context.Context, path string) (entity.Table, error)
	WriteTable(ctx context.Context, path string, table entity.Table) error
}

type Reporter interface {
	WriteReport(ctx context.Context, path string, report Report) error
}

// Diagnostics receives leveled progress and data-quality messages.
// *slog.Logger satisfies it.
type Diagnostics interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store    TableStore
	Reporter Reporter
	Log      Diagnostics
	Clock    Clock
	ID       pkguid.StringID
}

type Usecase struct {
	store    TableStore
	reporter Reporter
	log      Diagnostics
	clock    Clock
	id       pkguid.StringID
	validate *validator.Validate
}

func New(dep Dependency) *Usecase {
	log := dep.Log
	if log == nil {
		log = slog.Default()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	id := dep.ID
	if id == nil {
		id = pkguid.NewUUID("")
	}

	return &Usecase{
		store:    dep.Store,
		reporter: dep.Reporter,
		log:      log,
		clock:    clock,
		id:       id,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Reconcile runs the whole pipeline once: read the three inputs, resolve
// keeper identities, validate prior-year salaries, propagate next-year
// salaries into the import table and write it to req.OutputPath.
//
// Data-quality problems are logged as warnings and returned in
// Result.Findings. Any returned error is fatal, has already been logged, and
// means no output file was written.
func (u *Usecase) Reconcile(ctx context.Context, req Request) (res Result, err error) {
	runID := u.id.Generate()
	ctx = pkglog.SetRunID(ctx, runID)

	defer func() {
		if rvr := recover(); rvr != nil {
			u.log.ErrorContext(ctx, "panic occurred during reconciliation", "stack", string(debug.Stack()))
			res = Result{RunID: runID}
			err = pkgerror.NewUnexpected(fmt.Errorf("panic: %v", rvr))
		}
		if err != nil {
			u.log.ErrorContext(ctx, "an error occurred", "error", err)
		}
	}()

	res, err = u.reconcile(ctx, req)
	res.RunID = runID

	return res, normalizeErr(err)
}

func (u *Usecase) reconcile(ctx context.Context, req Request) (Result, error) {
	if u.store == nil {
		return Result{}, pkgerror.NewUnexpected(errors.New("missing dependency"))
	}

	if err := u.validate.Struct(req); err != nil {
		return Result{}, pkgerror.NewInvalidInput(err)
	}
	if math.IsInf(req.Tolerance, 0) || math.IsNaN(req.Tolerance) {
		return Result{}, pkgerror.NewInvalidInput(fmt.Errorf("tolerance must be a finite number, got %v", req.Tolerance))
	}

	u.log.InfoContext(ctx, "reading csv files",
		"roster", req.RosterPath, "keepers", req.KeepersPath, "import", req.ImportPath)

	rosterTable, err := u.store.ReadTable(ctx, req.RosterPath)
	if err != nil {
		return Result{}, err
	}
	keeperTable, err := u.store.ReadTable(ctx, req.KeepersPath)
	if err != nil {
		return Result{}, err
	}
	importTable, err := u.store.ReadTable(ctx, req.ImportPath)
	if err != nil {
		return Result{}, err
	}

	roster, findings, err := parseRoster(req.RosterPath, rosterTable, req.Columns)
	if err != nil {
		return Result{}, err
	}
	keepers, keeperFindings, err := parseKeepers(req.KeepersPath, keeperTable, req.Columns)
	if err != nil {
		return Result{}, err
	}
	imports, err := parseImports(req.ImportPath, importTable, req.Columns)
	if err != nil {
		return Result{}, err
	}
	findings = append(findings, keeperFindings...)
	u.warnAll(ctx, findings)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	u.log.InfoContext(ctx, "matching players with player ids")
	index, dupNames := BuildNameIndex(roster)
	u.warnAll(ctx, dupNames)
	unresolved := ResolveKeepers(keepers, index)

	u.log.InfoContext(ctx, "validating prior-year salaries")
	mismatches := ValidateSalaries(keepers, roster, decimal.NewFromFloat(req.Tolerance))
	u.warnAll(ctx, mismatches)

	if len(unresolved) > 0 {
		u.log.WarnContext(ctx, "players without matching player ids", "count", len(unresolved))
		u.warnAll(ctx, unresolved)
	}

	u.log.InfoContext(ctx, "updating import salaries")
	salaries, dupKeepers := BuildSalaryMap(keepers)
	u.warnAll(ctx, dupKeepers)
	summary, missing := Propagate(imports, salaries)
	u.warnAll(ctx, missing)

	u.log.InfoContext(ctx, "final statistics",
		"total_rows", summary.TotalRows,
		"positive_salary_rows", summary.PositiveRows,
		"zero_salary_rows", summary.ZeroRows,
		"updated_rows", summary.UpdatedRows,
	)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	output := renderImport(importTable, imports, req.Columns.ImportSalary)
	if err := u.store.WriteTable(ctx, req.OutputPath, output); err != nil {
		return Result{}, err
	}
	u.log.InfoContext(ctx, "successfully saved output", "path", req.OutputPath)

	findings = append(findings, dupNames...)
	findings = append(findings, mismatches...)
	findings = append(findings, unresolved...)
	findings = append(findings, dupKeepers...)
	findings = append(findings, missing...)

	res := Result{
		Summary:    summary,
		Findings:   findings,
		OutputPath: req.OutputPath,
	}

	if req.ReportPath != "" && u.reporter != nil {
		report := Report{
			RunID:       pkglog.GetRunID(ctx),
			GeneratedAt: u.clock.Now(),
			Summary:     summary,
			Findings:    findings,
		}
		if err := u.reporter.WriteReport(ctx, req.ReportPath, report); err != nil {
			u.log.WarnContext(ctx, "failed to write findings report", "path", req.ReportPath, "error", err)
		} else {
			res.ReportPath = req.ReportPath
			u.log.InfoContext(ctx, "saved findings report", "path", req.ReportPath)
		}
	}

	return res, nil
}

func (u *Usecase) warnAll(ctx context.Context, findings []entity.Finding) {
	for _, f := range findings {
		u.warn(ctx, f)
	}
}

func (u *Usecase) warn(ctx context.Context, f entity.Finding) {
	switch f.Kind {
	case entity.FindingUnparseableSalary:
		u.log.WarnContext(ctx, "unparseable salary",
			"source", f.Source, "row", f.Row, "player", f.Player, "column", f.Column, "value", f.Value)
	case entity.FindingUnresolvedPlayer:
		u.log.WarnContext(ctx, "player without matching player id",
			"player", f.Player, "team", f.Team)
	case entity.FindingSalaryMismatch:
		u.log.WarnContext(ctx, "salary mismatch",
			"player", f.Player, "player_id", f.PlayerID,
			"roster_salary", f.Expected.Decimal.StringFixed(2),
			"keeper_salary", f.Actual.Decimal.StringFixed(2))
	case entity.FindingDuplicateName:
		u.log.WarnContext(ctx, "duplicate player name in roster, last id wins",
			"player", f.Player, "player_id", f.PlayerID, "ids", f.Value)
	case entity.FindingDuplicateKeeperID:
		u.log.WarnContext(ctx, "player id appears on more than one keeper row, last salary wins",
			"player", f.Player, "player_id", f.PlayerID, "row", f.Row)
	case entity.FindingMissingNextSalary:
		u.log.WarnContext(ctx, "keeper has no next-year salary",
			"player_id", f.PlayerID, "row", f.Row)
	default:
		u.log.WarnContext(ctx, "data quality finding", "kind", f.Kind, "row", f.Row)
	}
}

func normalizeErr(err error) error {
	if err == nil {
		return nil
	}

	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return pkgerror.NewCanceled(err)
	}

	return pkgerror.NewUnexpected(err)
}
