// Package cmd implements the cfrac command-line tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contfrac/internal/config"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	output  string
	verbose bool

	cfg *config.Config
	log *slog.Logger
}

// Execute runs the root command with the process arguments.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cfrac: %v\n", err)
		return err
	}

	return nil
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cfrac",
		Short: "cfrac - simple continued fractions",
		Long: `cfrac builds, prints and combines simple continued fractions.

Values are written as "[a0; a1; a2]". A periodic tail is shown in
parentheses, so √2 prints as "[1; (2)]".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+")")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text or yaml (default from config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages to stderr")

	root.AddCommand(
		a.parseCmd(),
		a.rationalCmd(),
		a.floatCmd(),
		a.sqrtCmd(),
		a.eCmd(),
		a.piCmd(),
		a.convergentsCmd(),
		a.calcCmd(),
		versionCmd(),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = a.output
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.log.Debug("configuration ready",
		"command", cmd.Name(),
		"max_terms", cfg.MaxTerms,
		"epsilon", cfg.Epsilon,
		"output", cfg.Output,
	)

	return nil
}

// terms returns the --terms flag of cmd, or the configured limit when unset.
func (a *app) terms(cmd *cobra.Command) int {
	if f := cmd.Flags().Lookup("terms"); f != nil && f.Changed {
		n, err := cmd.Flags().GetInt("terms")
		if err == nil {
			return n
		}
	}

	return a.cfg.MaxTerms
}

// addTermsFlag registers --terms on cmd.
func addTermsFlag(cmd *cobra.Command) {
	cmd.Flags().Int("terms", 0, "maximum number of terms (default from config)")
}

// out returns the writer reports go to.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
