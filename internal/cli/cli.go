// Package cli provides the command-line interface for wythoff.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wythoff/coxeter"
	"github.com/katalvlaran/wythoff/internal/config"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitValidation = 1 // bad flags, config or Coxeter matrix
	ExitDiagram    = 2 // diagram is not spherical
	ExitInternal   = 3
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// CLI holds the command-line interface state.
type CLI struct {
	rootCmd *cobra.Command
	cfg     *config.Config
	logger  *slog.Logger
	stderr  io.Writer

	// Global flags
	configPath string
	logLevel   string
	logFormat  string
}

// New creates a new CLI instance writing to stdout and stderr.
func New() *CLI {
	return NewWithIO(os.Stdout, os.Stderr)
}

// NewWithIO creates a CLI with explicit output streams.
func NewWithIO(stdout, stderr io.Writer) *CLI {
	c := &CLI{stderr: stderr}
	c.rootCmd = c.newRootCmd()
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
	return c
}

// Execute runs the CLI with os.Args and returns the process exit code.
func (c *CLI) Execute() int {
	return c.run(os.Args[1:])
}

func (c *CLI) run(args []string) int {
	c.rootCmd.SetArgs(args)
	err := c.rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(c.stderr, "wythoff: %v\n", err)
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, coxeter.ErrNotSpherical):
		return ExitDiagram
	case errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, coxeter.ErrInvalidMatrix),
		errors.Is(err, coxeter.ErrUnknownPreset),
		errors.Is(err, errUsage):
		return ExitValidation
	default:
		return ExitInternal
	}
}

// errUsage marks malformed command-line input.
var errUsage = errors.New("usage error")

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wythoff",
		Short: "Enumerate Coxeter group flags and build Wythoffian polytopes",
		Long: `wythoff enumerates the fundamental domains (flags) of a finite reflection
group given by its Coxeter matrix, caches them, and builds the vertex/edge
skeleton of the polytope selected by a ring pattern.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	// Global flags
	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./wythoff.yaml or ~/.wythoff/wythoff.yaml)")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "", "log format: text|json")

	cmd.AddCommand(c.newGenerateCmd())
	cmd.AddCommand(c.newNameCmd())
	cmd.AddCommand(c.newPresetsCmd())
	cmd.AddCommand(c.newVersionCmd())

	return cmd
}

func (c *CLI) initConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	c.cfg = cfg

	// Override with flags
	if c.logLevel != "" {
		c.cfg.Log.Level = c.logLevel
	}
	if c.logFormat != "" {
		c.cfg.Log.Format = c.logFormat
	}

	c.logger, err = c.cfg.Logger(c.stderr)
	return err
}
