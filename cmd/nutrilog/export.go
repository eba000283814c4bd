// ABOUTME: CLI commands for exporting and importing all tracked data.
// ABOUTME: Format is json or yaml; import picks it from the file extension.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [json|yaml]",
	Short: "Export all data",
	Long: `Export every table (food, exercise, sleep, weights, goals, meal plan,
pantry, shopping list) as JSON or YAML. Writes to stdout unless -o is given.

Examples:
  nutrilog export json -o backup.json
  nutrilog export yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := "json"
		if len(args) > 0 {
			format = strings.ToLower(args[0])
		}

		var (
			data []byte
			err  error
		)
		switch format {
		case "json":
			data, err = repo.ExportJSON()
		case "yaml", "yml":
			data, err = repo.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from an export file",
	Long: `Import a previous export. The format is taken from the file
extension (.json, .yaml, .yml). Imported entries keep their IDs, so
re-importing the same file does not duplicate data.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".json":
			err = repo.ImportJSON(data)
		case ".yaml", ".yml":
			err = repo.ImportYAML(data)
		default:
			return fmt.Errorf("unknown file extension: %s (use .json, .yaml, or .yml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
