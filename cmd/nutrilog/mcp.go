// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nutrilog/nutrilog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your nutrition,
exercise, and sleep data through a standardized protocol. The server
communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "nutrilog": {
        "command": "nutrilog",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_food       Log a food entry with calories
  log_exercise   Log an exercise entry with calories burned
  log_sleep      Log a sleep night with bedtime and wakeup
  list_entries   List food and exercise entries for a date
  delete_entry   Delete an entry by kind and ID
  get_goals      Get current weight and calorie goals
  calorie_graph  Daily intake/burn/overburn series for a timeframe
  sleep_stats    Sleep statistics for a timeframe

AVAILABLE RESOURCES:

  nutrilog://today     Today's entries and calorie totals
  nutrilog://summary   Goals, weekly calories, and sleep stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
