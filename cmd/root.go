package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the chronos application
var rootCmd = &cobra.Command{
	Use:   "chronos",
	Short: "MCP server for time, timezone, and calendar tools",
	Long: `chronos is an MCP (Model Context Protocol) server that gives AI
assistants reliable time tools: NTP-backed current time, timezone
resolution from city or country names, alternative calendar renderings
(Unix, ISO week, Hijri, Japanese, Persian, Hebrew), and date arithmetic.

It can run over:
  - stdio (default), for local assistant integrations
  - streamable HTTP, for deployed instances`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "chronos version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
