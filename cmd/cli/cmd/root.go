// Package cmd provides the CLI commands for margin-optimizer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"margin-optimizer/internal/config"
	"margin-optimizer/internal/logging"
)

var (
	cfgFile    string
	backendURL string
	noColor    bool
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "margin-optimizer",
	Short: "Analyze vendor pricing and negotiation leverage",
	Long: `margin-optimizer analyzes vendor quotes against client pricing to
surface gross margins, negotiation leverage, and renewal opportunities.

Examples:
  margin-optimizer analyze SVC-12345
  margin-optimizer renewal SVC-12345
  margin-optimizer vendor "FiberCo"
  margin-optimizer strategy SVC-12345 4811
  margin-optimizer dashboard`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.margin-optimizer/config.hcl)")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "backend base URL")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(renewalCmd)
	rootCmd.AddCommand(vendorCmd)
	rootCmd.AddCommand(strategyCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("margin-optimizer version 0.1.0")
	},
}
