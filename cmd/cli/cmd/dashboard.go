// Package cmd - dashboard command
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"margin-optimizer/cmd/cli/ui"
	"margin-optimizer/internal/config"
	"margin-optimizer/internal/logging"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive analysis dashboard",
	Long: `Open an interactive terminal dashboard with service, renewal, and
vendor analysis tabs. The vendor tab autocompletes vendor names as you
type.`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	model := ui.NewDashboard(newClient(), cfg, logging.Logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
