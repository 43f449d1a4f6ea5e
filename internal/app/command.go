package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rroethle7474/JCL2025-Roster/internal/pkg/pkgerror"
)

// NewCommand builds the keepersync root command.
func NewCommand() *cobra.Command {
	var (
		configFile string
		envFiles   []string
	)

	cmd := &cobra.Command{
		Use:   "keepersync",
		Short: "Carry keeper salaries into the league import file",
		Long: `keepersync matches players on the keeper-eligible list to the prior-year
roster by name, checks their prior-year salary against the roster, and writes
the import file with each keeper's next-year salary. Players that are not
keeper-eligible get a salary of 0.

Values come from flags, KEEPERSYNC_* environment variables (for example
KEEPERSYNC_INPUT_ROSTER), an optional keepersync.yaml/.toml/.json config file,
and built-in defaults, in that order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := New(Options{
				ConfigFile: configFile,
				EnvFiles:   envFiles,
				Flags:      cmd.Flags(),
				LogWriter:  cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			defer application.Stop(cmd.Context())

			_, err = application.Run(cmd.Context())
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default is ./keepersync.{yaml,toml,json} when present)")
	flags.StringSliceVar(&envFiles, "env-file", []string{".env"}, "env files loaded before reading KEEPERSYNC_* variables")
	flags.String("roster", "", "prior-year roster csv (default 2024-JCL-Player-List.csv)")
	flags.String("keepers", "", "keeper-eligible csv (default 2025-JCL-Keeper-Eligible-List.csv)")
	flags.String("import", "", "current-year import csv (default 2025-JCL-Import.csv)")
	flags.StringP("output", "o", "", "output csv (default 2025-JCL-Import-Final.csv)")
	flags.String("report", "", "optional .xlsx findings report")
	flags.Float64("tolerance", 0, "largest prior-year salary difference treated as equal (default 0.01)")
	flags.String("log-level", "", "debug, info, warn or error (default info)")
	flags.String("log-format", "", "json or text (default json)")

	return cmd
}

// Execute runs the command with args and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		// flag parsing and other cobra errors never reach the logger
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	return perr.ExitCode()
}
