// Package cmd - analyze command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var analyzeFormat string

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [service-id]",
	Short: "Analyze vendor quotes for a service",
	Long: `Fetch every vendor quote attached to a service, quotes for nearby
services, and published vendor price lists, with gross margins against the
client price.

Examples:
  margin-optimizer analyze SVC-12345
  margin-optimizer analyze --format json SVC-12345`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "output format (cli, json)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if outputFormat(analyzeFormat) == "json" {
		client := newClient()
		payload, err := client.AnalyzeService(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(payload)
	}

	ctrl, _ := newController()
	if err := ctrl.SubmitService(ctx, args[0]); err != nil {
		// Already rendered to the error banner.
		return err
	}
	return nil
}

// outputFormat resolves a command's format flag against the configured
// default.
func outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	return defaultFormat()
}

func printJSON(payload interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
