package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logMode string
	logger  *zap.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	ro := &rootOptions{}
	root := &cobra.Command{
		Use:           "adg",
		Short:         "Automated diagram generator for perturbation theory",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(ro.logMode)
			if err != nil {
				return err
			}
			ro.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ro.logger != nil {
				_ = ro.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&ro.logMode, "log", "", "logging: development, production or empty for none")

	root.AddCommand(generateCmd(ro))
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func newLogger(mode string) (*zap.Logger, error) {
	switch mode {
	case "":
		return zap.NewNop(), nil
	case "development", "dev":
		return zap.NewDevelopment()
	case "production", "prod":
		return zap.NewProduction()
	}

	return nil, fmt.Errorf("unknown log mode %q", mode)
}
