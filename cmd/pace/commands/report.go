package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pace/internal/app"
)

func (c *CLI) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Load tasks and print the performance report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sourceURL, _ := cmd.Flags().GetString("source")
			sample, _ := cmd.Flags().GetBool("sample")
			top, _ := cmd.Flags().GetInt("top")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			return c.app.Run(cmd.Context(), app.RunOptions{
				SourceURL:  sourceURL,
				Sample:     sample,
				Top:        top,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("source", "s", "", "HTTP endpoint serving task records (overrides pace.yaml)")
	cmd.Flags().Bool("sample", false, "Use synthetic demo tasks instead of any configured source")
	cmd.Flags().IntP("top", "t", 0, "Limit the ranked task table to the top N rows")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, color, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	return cmd
}
