package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"funcapp-api/internal/models"
	"funcapp-api/internal/services"
)

func newSummarizeCommand() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "summarize [file|-]",
		Short: "Print the JSON summary of a CSV file, or of stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}

			data, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			return runSummarize(cmd, data, compact)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print compact JSON instead of indented")

	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func runSummarize(cmd *cobra.Command, data []byte, compact bool) error {
	svc := services.NewCSVSummaryService(nil)

	result, err := svc.Summarize(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("summarizing CSV: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(models.NewSummaryResponse(result)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if skipped := result.SkippedRows(); skipped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d invalid row(s)\n", skipped)
	}
	return nil
}
