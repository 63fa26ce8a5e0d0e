// Package cmd - renewal command
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var renewalFormat string

// renewalCmd represents the renewal command
var renewalCmd = &cobra.Command{
	Use:   "renewal [service-id]",
	Short: "Analyze renewal leverage for a service",
	Long: `Fetch the service's vendor-of-choice line, the current vendor's
renewal track record, and cheaper nearby alternatives to use as leverage.

Examples:
  margin-optimizer renewal SVC-12345
  margin-optimizer renewal --format json SVC-12345`,
	Args: cobra.ExactArgs(1),
	RunE: runRenewal,
}

func init() {
	renewalCmd.Flags().StringVarP(&renewalFormat, "format", "f", "", "output format (cli, json)")
}

func runRenewal(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if outputFormat(renewalFormat) == "json" {
		client := newClient()
		payload, err := client.AnalyzeRenewal(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(payload)
	}

	ctrl, _ := newController()
	return ctrl.SubmitRenewal(ctx, args[0])
}
