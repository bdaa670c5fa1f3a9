package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/core/mcp/server"
	"github.com/vadiminshakov/factorial/core/tools"
	"github.com/vadiminshakov/factorial/math"
	"github.com/vadiminshakov/factorial/pkg/logging"
	"github.com/vadiminshakov/factorial/terminal"
	"github.com/vadiminshakov/factorial/ui"
)

// Set by build flags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(1)
	}
}

// app carries the configuration loaded before any command runs.
type app struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	var headless bool

	root := &cobra.Command{
		Use:   "factorial",
		Short: "Exact factorials from the command line, a REPL, or MCP",
		Long: `factorial computes n! with arbitrary precision.

Without a subcommand it starts an interactive REPL; with --headless it reads
one expression per line from stdin and writes one result per line.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if headless {
				return terminal.RunHeadless(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return terminal.RunTerminal(a.cfg)
		},
	}

	root.Flags().BoolVar(&headless, "headless", false,
		"read expressions from stdin without the interactive prompt")

	root.AddCommand(a.newComputeCmd())
	root.AddCommand(a.newTableCmd())
	root.AddCommand(newCalcCmd())
	root.AddCommand(a.newReplCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newConfigCmd())

	return root
}

func (a *app) loadConfig() error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		logging.L().Warn("using default configuration", "err", err)
	}
	a.cfg = cfg
	return terminal.ApplyConfig(cfg)
}

// computeParams holds the parsed flags for the compute command.
type computeParams struct {
	input  string
	format string
	stdout io.Writer
}

// runCompute is the extracted, testable body of the compute command.
func runCompute(p computeParams) error {
	n, err := tools.ValidateInput(tools.ParseLiteral(p.input))
	if err != nil {
		return err
	}

	logging.L().Debug("computing factorial", "n", n)
	v, err := math.Factorial(n)
	if err != nil {
		return err
	}

	return ui.WriteResult(p.stdout, p.format, ui.Result{N: n, Value: v.String()})
}

func (a *app) newComputeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "compute <n>",
		Short: "Print n!",
		Example: `  factorial compute 20
  factorial compute 100 --format json
  factorial compute -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}
			return runCompute(computeParams{
				input:  args[0],
				format: format,
				stdout: cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", config.DefaultFormat,
		"output format: text, json, or yaml")

	return cmd
}

// tableParams holds the parsed flags for the table command.
type tableParams struct {
	from    string
	to      string
	format  string
	workers int
	stdout  io.Writer
}

// runTable is the extracted, testable body of the table command.
func runTable(ctx context.Context, p tableParams) error {
	from, err := tools.ValidateInput(tools.ParseLiteral(p.from))
	if err != nil {
		return errors.Wrap(err, "from")
	}
	to, err := tools.ValidateInput(tools.ParseLiteral(p.to))
	if err != nil {
		return errors.Wrap(err, "to")
	}
	if from > to {
		return errors.Errorf("from (%d) must not exceed to (%d)", from, to)
	}

	ns, err := math.Range(from, to)
	if err != nil {
		return err
	}

	logging.L().Debug("computing table", "from", from, "to", to, "workers", p.workers)
	entries, err := math.Table(ctx, ns, p.workers)
	if err != nil {
		return err
	}

	return ui.WriteTable(p.stdout, p.format, ui.NewResults(entries))
}

func (a *app) newTableCmd() *cobra.Command {
	var (
		format  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "table <from> <to>",
		Short: "Print from! through to!",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			return runTable(cmd.Context(), tableParams{
				from:    args[0],
				to:      args[1],
				format:  format,
				workers: workers,
				stdout:  cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", config.DefaultFormat,
		"output format: text, json, or yaml")
	cmd.Flags().IntVarP(&workers, "workers", "w", config.DefaultWorkers,
		"maximum concurrent computations (0 for one per row)")

	return cmd
}

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expr>",
		Short: "Evaluate an arithmetic expression with factorial(x)",
		Example: `  factorial calc 'factorial(20)/factorial(18)'
  factorial calc 2 '*' 'fact(5)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := tools.Execute("calc", map[string]interface{}{
				"expr": strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (a *app) newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return terminal.RunTerminal(a.cfg)
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the factorial tools over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(tools.Registry{}, tools.GetToolDescriptions(), version)
			return srv.Run(cmd.Context())
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create or update ~/.factorial/config.json interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InteractiveSetup()
			if err != nil {
				return err
			}
			return terminal.ApplyConfig(cfg)
		},
	}
}
