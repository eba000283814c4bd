// ABOUTME: CLI commands for exercise entries and MET-based estimates.
// ABOUTME: Search looks up Compendium activities and projects calories.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/nutrilog/nutrilog/internal/met"
	"github.com/nutrilog/nutrilog/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseDate    string
	exerciseMinutes int
	exerciseWeight  float64
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Track calories burned",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <activity> <calories>",
	Short: "Log an exercise entry",
	Long: `Log an exercise entry with calories burned.

Use 'exercise search' first if you want a MET-based calorie estimate.

Examples:
  nutrilog exercise add "running" 400
  nutrilog exercise add "yoga" 120 --date 2025-03-09`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := parseCalories(args[1])
		if err != nil {
			return err
		}
		date, err := entryDate(exerciseDate)
		if err != nil {
			return err
		}

		e := models.NewExerciseEntry(args[0], calories, date)
		if err := repo.CreateExerciseEntry(e); err != nil {
			return fmt.Errorf("failed to create exercise entry: %w", err)
		}

		color.Green("✓ Logged %s", e.Activity)
		fmt.Printf("  %s %d kcal burned on %s\n",
			color.New(color.Faint).Sprint(e.ID.String()[:8]),
			e.Calories, models.FormatDate(e.Date))
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercise entries for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := entryDate(exerciseDate)
		if err != nil {
			return err
		}
		dateStr := models.FormatDate(date)

		entries, err := repo.ListExerciseEntries(dateStr)
		if err != nil {
			return fmt.Errorf("failed to list exercise entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No exercise entries for %s.\n", dateStr)
			return nil
		}

		faint := color.New(color.Faint)
		total := 0
		for _, e := range entries {
			fmt.Printf("%s %s %d kcal\n",
				faint.Sprint(e.ID.String()[:8]),
				padRight(truncate(e.Activity, 30), 32),
				e.Calories)
			total += e.Calories
		}
		fmt.Printf("\nDaily Calories Burned (%s): %d\n", dateStr, total)
		return nil
	},
}

var exerciseEditCmd = &cobra.Command{
	Use:   "edit <id> <activity> <calories>",
	Short: "Edit an exercise entry by ID or prefix",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := parseCalories(args[2])
		if err != nil {
			return err
		}
		if err := repo.UpdateExerciseEntry(args[0], args[1], calories); err != nil {
			return err
		}
		color.Green("✓ Updated %s", args[0])
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise entry by ID or prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteExerciseEntry(args[0]); err != nil {
			return err
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

var exerciseSearchCmd = &cobra.Command{
	Use:     "search <query>",
	Aliases: []string{"suggest"},
	Short:   "Search MET activities and estimate calories",
	Long: `Search the Compendium of Physical Activities by name or category.

Estimates use MET x body weight (kg) x duration (hours). Body weight
comes from your latest logged weight unless --weight overrides it;
--minutes sets the duration.

Examples:
  nutrilog exercise search swimming
  nutrilog exercise search running --minutes 45 --weight 82`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := met.Search(args[0], 10)
		if err != nil {
			return fmt.Errorf("failed to search activities: %w", err)
		}
		if len(results) == 0 {
			fmt.Printf("No activities match %q.\n", args[0])
			return nil
		}

		weight := exerciseWeight
		if weight <= 0 {
			weight = bodyWeightKg()
		}
		hours := float64(exerciseMinutes) / 60
		faint := color.New(color.Faint)

		fmt.Printf("Estimates for %.1f kg over %d minutes:\n\n", weight, exerciseMinutes)
		for _, a := range results {
			estimate := met.EstimateCalories(a.MET, weight, hours)
			fmt.Printf("%s %s MET %.1f  ~%d kcal\n",
				padRight(truncate(a.Description, 50), 52),
				faint.Sprint(padRight(a.Category, 22)),
				a.MET, estimate)
		}
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseDate, "date", "", "entry date (yyyy-MM-dd), defaults to today")
	exerciseListCmd.Flags().StringVar(&exerciseDate, "date", "", "date to list (yyyy-MM-dd), defaults to today")
	exerciseSearchCmd.Flags().IntVar(&exerciseMinutes, "minutes", 30, "duration for calorie estimates")
	exerciseSearchCmd.Flags().Float64Var(&exerciseWeight, "weight", 0, "body weight in kg (defaults to latest logged weight)")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseEditCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	exerciseCmd.AddCommand(exerciseSearchCmd)
	rootCmd.AddCommand(exerciseCmd)
}
