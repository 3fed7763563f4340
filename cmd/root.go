package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"calcdrills/config"
)

// app carries what the subcommands share once the root command has run.
type app struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewRootCmd builds the command tree. Each call returns a fresh tree so
// tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "calcdrills",
		Short: "Century calendar scan and loan payment search",
		Long: `calcdrills bundles two numeric drills: a day-by-day walk over 1900-1999
that counts the months starting on a Sunday, and a search for the fixed
periodical payment that pays off a loan, done by brute force and by bisection.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			a.log = config.NewLogger(cfg, cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.AddCommand(
		newCalendarCmd(a),
		newLoanCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
