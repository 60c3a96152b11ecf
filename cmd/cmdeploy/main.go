package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/artpar/cmdeploy/internal/core/pipeline"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCommand(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(stderr, "cmdeploy: %v\n", err)

	var rErr *RunError
	if errors.As(err, &rErr) {
		return rErr.ExitCode
	}
	// flag and argument errors
	return ExitConfigError
}

// =============================================================================
// Commands
// =============================================================================

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmdeploy",
		Short: "Transform a Cloudera Manager deployment document",
		Long: `cmdeploy reads a Cloudera Manager deployment document from a file or from
the deployment API endpoint, reshapes it and writes it to standard output.

Keyed lists become maps, host and group references are resolved, fields can
be sorted and annotated with their API paths. Sensitive fields are always
removed.`,
		Example: `  cmdeploy -f deployment.json -r -s
  cmdeploy -u http://cm:7180/api/v10/cm/deployment --user admin --pass admin -r -a -o yaml`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return &RunError{Op: "read flags", Err: err, ExitCode: ExitConfigError}
			}

			cfg, err := LoadConfig(configPath, cmd.Flags())
			if err != nil {
				return &RunError{Op: "load config", Err: err, ExitCode: ExitConfigError}
			}

			logger := SetupLogger(cfg, stderr)
			logger.Debug("starting cmdeploy", "version", Version, "config", configPath)

			return NewProcessor(cfg, logger).Process(cmd.Context(), stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addFlags(cmd.Flags())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to config file")

	// Input
	flags.StringP("file", "f", "", `Deployment JSON file ("-" for stdin)`)
	flags.StringP("url", "u", "", "Deployment API URL")
	flags.String("user", "", "Username for the deployment API")
	flags.String("pass", "", "Password for the deployment API")
	flags.Duration("timeout", 30*time.Second, "Per-request timeout for the deployment API")
	flags.Int("retry-max", 3, "Maximum retries for the deployment API")

	// Transform
	flags.BoolP("reformat", "r", false, "Collapse keyed lists into maps and resolve references")
	flags.BoolP("sort", "s", false, "Sort fields by name")
	flags.BoolP("add-api-paths", "a", false, "Add the API path of every section (requires --reformat)")
	flags.StringP("api-version", "v", pipeline.DefaultAPIVersion, "API version used in API paths")

	// Output
	flags.StringP("output-format", "o", "json", "Output format: json, yaml or xml")
	flags.BoolP("pretty", "p", false, "Indent JSON and XML output")

	// Logging
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-format", "text", "Log format: text or json")
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cmdeploy %s (built %s)\n", Version, BuildTime)
		},
	}
}
