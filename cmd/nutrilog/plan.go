// ABOUTME: CLI commands for the weekly meal plan, including AI suggestions.
// ABOUTME: One free-text meal block per weekday; suggest can replace a day.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/nutrilog/nutrilog/internal/ai"
	"github.com/nutrilog/nutrilog/internal/models"
	"github.com/spf13/cobra"
)

var (
	planHealthy    bool
	planCheap      bool
	planVegetarian bool
	planVegan      bool
	planQuick      bool
	planUsePantry  bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the weekly meal plan",
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the weekly meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := repo.GetMealPlan()
		if err != nil {
			return fmt.Errorf("failed to load meal plan: %w", err)
		}

		faint := color.New(color.Faint)
		empty := true
		for _, day := range models.Weekdays {
			meal := plan[day]
			if meal == "" {
				fmt.Printf("%s %s\n", padRight(day+":", 11), faint.Sprint("(nothing planned)"))
				continue
			}
			empty = false
			lines := strings.Split(meal, "\n")
			fmt.Printf("%s %s\n", padRight(day+":", 11), lines[0])
			for _, line := range lines[1:] {
				fmt.Printf("%s %s\n", padRight("", 11), line)
			}
		}
		if empty {
			fmt.Println("\nFill a day with 'nutrilog plan set <day> <meals>' or 'nutrilog plan suggest <day>'.")
		}
		return nil
	},
}

var planSetCmd = &cobra.Command{
	Use:   "set <day> <meals>",
	Short: "Set the meal plan for a weekday",
	Long: `Set one weekday's meals as free text. Day names accept any
unambiguous prefix ("mon", "fri").

Examples:
  nutrilog plan set monday "Porridge / Soup / Chicken stir-fry"
  nutrilog plan set fri "Pancakes / Leftovers / Pizza"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.SetMealPlanDay(args[0], args[1]); err != nil {
			return err
		}
		color.Green("✓ Updated %s", models.NormalizeWeekday(args[0]))
		return nil
	},
}

var planClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the whole meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.ClearMealPlan(); err != nil {
			return fmt.Errorf("failed to clear meal plan: %w", err)
		}
		color.Green("✓ Meal plan cleared")
		return nil
	},
}

var planSuggestCmd = &cobra.Command{
	Use:   "suggest <day>",
	Short: "Suggest a day's meals with AI",
	Long: `Ask the configured AI provider for a day's meal plan and save it.
Criteria flags shape the suggestion; --use-pantry includes your pantry
stock in the request. An existing plan for the day is offered as a
starting point.

Examples:
  nutrilog plan suggest monday --healthy --quick
  nutrilog plan suggest sat --vegetarian --use-pantry`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := models.NormalizeWeekday(args[0])
		if day == "" {
			return fmt.Errorf("unknown or ambiguous weekday: %s", args[0])
		}

		opts := ai.MealPlanOptions{Criteria: planCriteria()}

		if planUsePantry {
			pantry, err := repo.ListPantryItems()
			if err != nil {
				return fmt.Errorf("failed to load pantry: %w", err)
			}
			for _, p := range pantry {
				opts.PantryItems = append(opts.PantryItems, p.Item)
			}
		}

		plan, err := repo.GetMealPlan()
		if err != nil {
			return fmt.Errorf("failed to load meal plan: %w", err)
		}
		opts.CurrentPlan = plan[day]

		ctx := cmd.Context()
		provider, err := ai.NewProvider(ctx, cfg.GetAIProvider(), cfg.AIModel)
		if err != nil {
			return err
		}
		worker := ai.NewWorker(provider)

		fmt.Printf("Asking %s...\n", provider.Name())
		response, err := worker.Ask(ctx, ai.BuildMealPlanPrompt(opts))
		if err != nil {
			return fmt.Errorf("AI request failed: %w", err)
		}

		response = strings.TrimSpace(response)
		if err := repo.SetMealPlanDay(day, response); err != nil {
			return err
		}

		color.Green("✓ Updated %s", day)
		fmt.Println(response)
		return nil
	},
}

// planCriteria collects the selected criteria flags as prompt adjectives.
func planCriteria() []string {
	var criteria []string
	for _, c := range []struct {
		set  bool
		name string
	}{
		{planHealthy, "healthy"},
		{planCheap, "cheap"},
		{planVegetarian, "vegetarian"},
		{planVegan, "vegan"},
		{planQuick, "quick to prepare"},
	} {
		if c.set {
			criteria = append(criteria, c.name)
		}
	}
	return criteria
}

func init() {
	planSuggestCmd.Flags().BoolVar(&planHealthy, "healthy", false, "prefer healthy meals")
	planSuggestCmd.Flags().BoolVar(&planCheap, "cheap", false, "prefer cheap meals")
	planSuggestCmd.Flags().BoolVar(&planVegetarian, "vegetarian", false, "vegetarian meals only")
	planSuggestCmd.Flags().BoolVar(&planVegan, "vegan", false, "vegan meals only")
	planSuggestCmd.Flags().BoolVar(&planQuick, "quick", false, "prefer quick meals")
	planSuggestCmd.Flags().BoolVar(&planUsePantry, "use-pantry", false, "build around pantry stock")

	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planClearCmd)
	planCmd.AddCommand(planSuggestCmd)
	rootCmd.AddCommand(planCmd)
}
