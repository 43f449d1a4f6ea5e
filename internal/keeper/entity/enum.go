package entity

// FindingKind names a recoverable data-quality problem.
type FindingKind string

const (
	FindingUnparseableSalary FindingKind = "UNPARSEABLE_SALARY"
	FindingUnresolvedPlayer  FindingKind = "UNRESOLVED_PLAYER"
	FindingSalaryMismatch    FindingKind = "SALARY_MISMATCH"
	FindingDuplicateName     FindingKind = "DUPLICATE_NAME"
	FindingDuplicateKeeperID FindingKind = "DUPLICATE_KEEPER_ID"
	FindingMissingNextSalary FindingKind = "MISSING_NEXT_SALARY"
)

// Source identifies which input a record or finding came from.
type Source string

const (
	SourceRoster  Source = "ROSTER"
	SourceKeepers Source = "KEEPERS"
	SourceImport  Source = "IMPORT"
)
