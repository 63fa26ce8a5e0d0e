// Package cmd - strategy command
package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var strategyFormat string

// strategyCmd represents the strategy command
var strategyCmd = &cobra.Command{
	Use:   "strategy [service-id] [quote-id]",
	Short: "Build a negotiation strategy for one vendor quote",
	Long: `Analyze the service first to collect published price lists, then
fetch the negotiation strategy for the given vendor quote: margin targets,
the vendor's track record, and leverage from price lists and alternatives.

Examples:
  margin-optimizer strategy SVC-12345 4811
  margin-optimizer strategy --format json SVC-12345 4811`,
	Args: cobra.ExactArgs(2),
	RunE: runStrategy,
}

func init() {
	strategyCmd.Flags().StringVarP(&strategyFormat, "format", "f", "", "output format (cli, json)")
}

func runStrategy(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	vqID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid quote id: %s", args[1])
	}

	// The strategy endpoint expects the price lists collected during
	// analysis, so the analysis runs first either way.
	if outputFormat(strategyFormat) == "json" {
		client := newClient()
		analysis, err := client.AnalyzeService(ctx, args[0])
		if err != nil {
			return err
		}
		payload, err := client.FetchStrategy(ctx, args[0], vqID, analysis.VPLOptions)
		if err != nil {
			return err
		}
		return printJSON(payload)
	}

	ctrl, _ := newController()
	if err := ctrl.SubmitService(ctx, args[0]); err != nil {
		return err
	}
	return ctrl.SubmitStrategy(ctx, vqID)
}
