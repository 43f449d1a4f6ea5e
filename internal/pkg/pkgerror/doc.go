// Package pkgerror defines the structured error used for fatal failures.
//
// Data-quality problems are never errors; they are reported as findings. An
// Error always means the run stops: it carries a Type (IO, validation or
// unexpected), a stable Code and an exit status for the CLI.
package pkgerror
