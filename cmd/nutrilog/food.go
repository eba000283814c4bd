// ABOUTME: CLI commands for food entries.
// ABOUTME: Includes fuzzy calorie suggestions from previously logged foods.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nutrilog/nutrilog/internal/models"
	"github.com/nutrilog/nutrilog/internal/usda"
	"github.com/spf13/cobra"
)

var (
	foodDate string
)

var foodCmd = &cobra.Command{
	Use:     "food",
	Aliases: []string{"f"},
	Short:   "Track calorie intake",
}

var foodAddCmd = &cobra.Command{
	Use:   "add <name> <calories>",
	Short: "Log a food entry",
	Long: `Log a food entry with its calories.

Examples:
  nutrilog food add "oatmeal" 300
  nutrilog food add "pizza slice" 285 --date 2025-03-09`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := parseCalories(args[1])
		if err != nil {
			return err
		}
		date, err := entryDate(foodDate)
		if err != nil {
			return err
		}

		e := models.NewFoodEntry(args[0], calories, date)
		if err := repo.CreateFoodEntry(e); err != nil {
			return fmt.Errorf("failed to create food entry: %w", err)
		}

		color.Green("✓ Logged %s", e.Food)
		fmt.Printf("  %s %d kcal on %s\n",
			color.New(color.Faint).Sprint(e.ID.String()[:8]),
			e.Calories, models.FormatDate(e.Date))
		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List food entries for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := entryDate(foodDate)
		if err != nil {
			return err
		}
		dateStr := models.FormatDate(date)

		entries, err := repo.ListFoodEntries(dateStr)
		if err != nil {
			return fmt.Errorf("failed to list food entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No food entries for %s.\n", dateStr)
			return nil
		}

		faint := color.New(color.Faint)
		total := 0
		for _, e := range entries {
			fmt.Printf("%s %s %d kcal\n",
				faint.Sprint(e.ID.String()[:8]),
				padRight(truncate(e.Food, 30), 32),
				e.Calories)
			total += e.Calories
		}
		fmt.Printf("\nDaily Calories (%s): %d\n", dateStr, total)
		return nil
	},
}

var foodEditCmd = &cobra.Command{
	Use:   "edit <id> <name> <calories>",
	Short: "Edit a food entry by ID or prefix",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := parseCalories(args[2])
		if err != nil {
			return err
		}
		if err := repo.UpdateFoodEntry(args[0], args[1], calories); err != nil {
			return err
		}
		color.Green("✓ Updated %s", args[0])
		return nil
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a food entry by ID or prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteFoodEntry(args[0]); err != nil {
			return err
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

var foodSuggestCmd = &cobra.Command{
	Use:   "suggest <name>",
	Short: "Suggest calories from logged foods or the USDA database",
	Long: `Suggest a calorie value by fuzzy-matching the name against foods
you have logged before. When nothing matches and USDA_API_KEY is set,
falls back to the USDA FoodData Central database.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := repo.GetDistinctFoods()
		if err != nil {
			return fmt.Errorf("failed to load foods: %w", err)
		}

		names := make([]string, len(foods))
		for i, f := range foods {
			names[i] = f.Food
		}
		ranks := fuzzy.RankFindNormalizedFold(args[0], names)
		sort.Sort(ranks)
		if len(ranks) == 0 {
			return suggestFromUSDA(cmd, args[0])
		}

		shown := 0
		seen := map[string]bool{}
		for _, r := range ranks {
			f := foods[r.OriginalIndex]
			key := fmt.Sprintf("%s/%d", f.Food, f.Calories)
			if seen[key] {
				continue
			}
			seen[key] = true
			fmt.Printf("%s %d kcal\n", padRight(truncate(f.Food, 30), 32), f.Calories)
			if shown++; shown == 5 {
				break
			}
		}
		return nil
	},
}

// suggestFromUSDA is the fallback when the local diary has no match.
func suggestFromUSDA(cmd *cobra.Command, query string) error {
	client := usda.FromEnv()
	if client == nil {
		fmt.Printf("No match for %q. Set USDA_API_KEY to search the USDA database.\n", query)
		return nil
	}

	s, err := client.SuggestCalories(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("USDA lookup failed: %w", err)
	}
	fmt.Printf("%s %d kcal %s\n",
		padRight(truncate(s.Description, 30), 32), s.Calories,
		color.New(color.Faint).Sprint("(USDA)"))
	return nil
}

var foodCommonCmd = &cobra.Command{
	Use:   "common",
	Short: "Show your most frequently logged foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := repo.GetMostCommonFoods(10)
		if err != nil {
			return fmt.Errorf("failed to load common foods: %w", err)
		}
		if len(foods) == 0 {
			fmt.Println("No foods logged yet.")
			return nil
		}
		for _, f := range foods {
			fmt.Printf("%s ~%d kcal\n", padRight(truncate(f.Food, 30), 32), f.Calories)
		}
		return nil
	},
}

func init() {
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "entry date (yyyy-MM-dd), defaults to today")
	foodListCmd.Flags().StringVar(&foodDate, "date", "", "date to list (yyyy-MM-dd), defaults to today")

	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodEditCmd)
	foodCmd.AddCommand(foodDeleteCmd)
	foodCmd.AddCommand(foodSuggestCmd)
	foodCmd.AddCommand(foodCommonCmd)
	rootCmd.AddCommand(foodCmd)
}
