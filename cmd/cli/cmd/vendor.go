// Package cmd - vendor command
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var vendorFormat string

// vendorCmd represents the vendor command
var vendorCmd = &cobra.Command{
	Use:   "vendor [vendor-name]",
	Short: "Show a vendor's negotiation and renewal history",
	Long: `Fetch a vendor's past negotiations and renewals with discount
outcomes, to gauge how much movement to expect before asking.

Examples:
  margin-optimizer vendor "FiberCo"
  margin-optimizer vendor --format json "FiberCo"`,
	Args: cobra.ExactArgs(1),
	RunE: runVendor,
}

func init() {
	vendorCmd.Flags().StringVarP(&vendorFormat, "format", "f", "", "output format (cli, json)")
}

func runVendor(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if outputFormat(vendorFormat) == "json" {
		client := newClient()
		payload, err := client.AnalyzeVendor(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(payload)
	}

	ctrl, _ := newController()
	return ctrl.SubmitVendor(ctx, args[0])
}
