package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"funcapp-api/internal/logging"
)

// Version is reported by --version and set via ldflags during build.
var Version = "dev"

// NewRootCommand builds the csvsummary command tree.
func NewRootCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:     "csvsummary",
		Short:   "Summarize item CSV files the same way the process_csv function does",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logging.Configure(logLevel, "text", cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.AddCommand(newSummarizeCommand())

	return cmd
}
