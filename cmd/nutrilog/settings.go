// ABOUTME: CLI commands for feature toggles stored in Charm KV.
// ABOUTME: Settings sync across machines via Charm Cloud.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/nutrilog/nutrilog/internal/settings"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage synced feature toggles",
	Long: `Manage feature toggles stored in Charm KV and synced via Charm Cloud.

Keys:
  food_ai_enabled       AI suggestions on the food log
  exercise_ai_enabled   AI suggestions on the exercise log
  meal_plan_ai_enabled  AI meal plan and shopping list generation
  silent_notif_enabled  suppress notification sounds

Set CHARM_HOST to use a self-hosted Charm server.`,
}

var settingsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := settings.GetClient()
		if err != nil {
			return fmt.Errorf("failed to open settings: %w", err)
		}
		defer client.Close()

		all, err := client.All()
		if err != nil {
			return err
		}

		for _, key := range settings.Keys {
			state := color.New(color.Faint).Sprint("off")
			if all[key] {
				state = color.GreenString("on")
			}
			fmt.Printf("%s %s\n", padRight(key, 24), state)
		}
		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := settings.GetClient()
		if err != nil {
			return fmt.Errorf("failed to open settings: %w", err)
		}
		defer client.Close()

		v, err := client.GetBool(args[0])
		if err != nil {
			return err
		}
		if v {
			fmt.Println("on")
		} else {
			fmt.Println("off")
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <on|off>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value bool
		switch args[1] {
		case "on", "true":
			value = true
		case "off", "false":
			value = false
		default:
			return fmt.Errorf("invalid value %q (use on or off)", args[1])
		}

		client, err := settings.GetClient()
		if err != nil {
			return fmt.Errorf("failed to open settings: %w", err)
		}
		defer client.Close()

		if err := client.SetBool(args[0], value); err != nil {
			return err
		}
		color.Green("✓ %s = %s", args[0], args[1])
		return nil
	},
}

var settingsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync settings with Charm Cloud",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := settings.GetClient()
		if err != nil {
			return fmt.Errorf("failed to open settings: %w", err)
		}
		defer client.Close()

		if err := client.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		color.Green("✓ Synced")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsSyncCmd)
	rootCmd.AddCommand(settingsCmd)
}
