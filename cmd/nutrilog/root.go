// ABOUTME: Root Cobra command for nutrilog CLI.
// ABOUTME: Handles config load and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/nutrilog/nutrilog/internal/config"
	"github.com/nutrilog/nutrilog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "nutrilog",
	Short: "Personal nutrition, exercise, and sleep tracker",
	Long: `Nutrilog is a CLI tool for tracking calories, exercise, and sleep.

WHAT IT TRACKS:

  Food       calorie intake per entry, per day
  Exercise   calories burned, with MET-based estimates
  Sleep      bedtime, wakeup, and duration per night
  Goals      current/target weight, daily calorie goal, timeframe

QUICK START:

  $ nutrilog food add "oatmeal" 300          # Log a meal
  $ nutrilog exercise add "running" 400      # Log calories burned
  $ nutrilog sleep add 23:00 07:00            # Log last night
  $ nutrilog graph 1w                        # Calorie balance, last week
  $ nutrilog sleep stats 1m                  # Sleep averages, last month

TIMEFRAMES:

  Graph and stats commands take a symbolic timeframe:
  1w (default), 2w, 1m, 3m, 1y, all

AI FEATURES:

  With OPENAI_API_KEY or GEMINI_API_KEY set (a .env file works too):

  $ nutrilog goal calc --age 30 --height 180 ...   # Calorie goal
  $ nutrilog plan suggest --healthy --use-pantry   # Daily meal plan
  $ nutrilog shopping generate                     # Shopping list
  $ nutrilog chat                                  # Interactive chat

  With USDA_API_KEY set, 'food suggest' falls back to the USDA
  FoodData Central database when nothing local matches.

MCP INTEGRATION:

  Run 'nutrilog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "nutrilog": { "command": "nutrilog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Entries are stored in SQLite at ~/.local/share/nutrilog/nutrilog.db.
  Preferences sync across devices through Charm Cloud.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// .env is optional; environment wins when both are set
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
