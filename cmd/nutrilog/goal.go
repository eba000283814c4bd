// ABOUTME: CLI commands for weight and calorie goals over the sparse goals log.
// ABOUTME: Includes the AI-backed daily calorie goal calculator.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/nutrilog/nutrilog/internal/ai"
	"github.com/nutrilog/nutrilog/internal/models"
	"github.com/spf13/cobra"
)

var (
	goalAge       int
	goalGender    string
	goalHeight    float64
	goalActivity  string
	goalTimeframe float64
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage weight and calorie goals",
	Long: `Manage your current weight, target weight, daily calorie goal, and
weight loss timeframe. Each 'set' appends to the goal log, so your
weight history is preserved.`,
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := repo.GetGoals()
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}

		fmt.Printf("%s %s kg\n", padRight("Current weight:", 18), floatDisplay(goals.CurrentWeight))
		fmt.Printf("%s %s kg\n", padRight("Target weight:", 18), floatDisplay(goals.TargetWeight))
		fmt.Printf("%s %s kcal\n", padRight("Daily calories:", 18), floatDisplay(goals.DailyCalorieGoal))
		fmt.Printf("%s %s months\n", padRight("Timeframe:", 18), floatDisplay(goals.LossTimeframe))

		if delta, ok := goals.WeightDelta(); ok {
			fmt.Printf("\n%.1f kg to go\n", delta)
		}
		return nil
	},
}

func goalSetCommand(use, short string, field models.GoalField) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil || value < 0 {
				return fmt.Errorf("invalid value: %s", args[0])
			}
			if err := repo.SetGoal(field, value, models.FormatDate(models.Today())); err != nil {
				return fmt.Errorf("failed to set goal: %w", err)
			}
			color.Green("✓ Set %s to %g", strings.Fields(use)[0], value)
			return nil
		},
	}
}

var goalHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show weight history",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := repo.GetWeightHistory()
		if err != nil {
			return fmt.Errorf("failed to load weight history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No weight entries yet. Log one with 'nutrilog goal weight <kg>'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s  %.1f kg\n",
				faint.Sprint(e.ID.String()[:8]),
				models.FormatDate(e.Date), e.Weight)
		}
		return nil
	},
}

var goalEditWeightCmd = &cobra.Command{
	Use:   "edit-weight <id> <kg>",
	Short: "Correct a logged weight entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil || weight <= 0 {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		if err := repo.UpdateWeightEntry(args[0], weight); err != nil {
			return err
		}
		color.Green("✓ Updated %s", args[0])
		return nil
	},
}

var goalDeleteWeightCmd = &cobra.Command{
	Use:   "delete-weight <id>",
	Short: "Delete a logged weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteWeightEntry(args[0]); err != nil {
			return err
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

var goalCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate a daily calorie goal with AI",
	Long: `Ask the configured AI provider for a daily calorie goal based on
your logged weights and the profile flags, then save it.

Requires current weight, target weight, and a timeframe (either already
set or passed via --timeframe).

Examples:
  nutrilog goal calc --age 34 --gender male --height 180 --activity moderate
  nutrilog goal calc --age 29 --gender female --height 165 --activity light --timeframe 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := repo.GetGoals()
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}
		if goals.CurrentWeight == nil || goals.TargetWeight == nil {
			return fmt.Errorf("set current and target weight first ('nutrilog goal weight', 'nutrilog goal target')")
		}
		timeframe := goalTimeframe
		if timeframe == 0 && goals.LossTimeframe != nil {
			timeframe = *goals.LossTimeframe
		}
		if timeframe == 0 {
			return fmt.Errorf("set a weight loss timeframe first ('nutrilog goal timeframe' or --timeframe)")
		}

		ctx := cmd.Context()
		provider, err := ai.NewProvider(ctx, cfg.GetAIProvider(), cfg.AIModel)
		if err != nil {
			return err
		}
		worker := ai.NewWorker(provider)

		prompt := ai.BuildCalorieGoalPrompt(ai.CalorieGoalInput{
			Age:             goalAge,
			Gender:          goalGender,
			HeightCm:        goalHeight,
			ActivityLevel:   goalActivity,
			CurrentWeightKg: *goals.CurrentWeight,
			TargetWeightKg:  *goals.TargetWeight,
			TimeframeMonths: timeframe,
		})

		fmt.Printf("Asking %s...\n", provider.Name())
		response, err := worker.Ask(ctx, prompt)
		if err != nil {
			return fmt.Errorf("AI request failed: %w", err)
		}

		goal, err := parseCalorieGoal(response)
		if err != nil {
			return err
		}
		if err := repo.SetGoal(models.GoalDailyCalories, float64(goal), models.FormatDate(models.Today())); err != nil {
			return fmt.Errorf("failed to save calorie goal: %w", err)
		}

		color.Green("✓ Daily calorie goal set to %d kcal", goal)
		return nil
	},
}

// parseCalorieGoal extracts the bare number the calorie prompt asks for,
// tolerating surrounding whitespace or a trailing unit.
func parseCalorieGoal(response string) (int, error) {
	field := strings.TrimSpace(response)
	if i := strings.IndexByte(field, ' '); i > 0 {
		field = field[:i]
	}
	field = strings.TrimSuffix(field, "kcal")
	goal, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || goal <= 0 {
		return 0, fmt.Errorf("unexpected AI response: %q", strings.TrimSpace(response))
	}
	return goal, nil
}

// floatDisplay formats an optional goal value, "--" when never set.
func floatDisplay(v *float64) string {
	if v == nil {
		return "--"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func init() {
	goalCalcCmd.Flags().IntVar(&goalAge, "age", 30, "age in years")
	goalCalcCmd.Flags().StringVar(&goalGender, "gender", "unspecified", "gender for the estimate")
	goalCalcCmd.Flags().Float64Var(&goalHeight, "height", 170, "height in cm")
	goalCalcCmd.Flags().StringVar(&goalActivity, "activity", "moderate", "activity level (sedentary, light, moderate, active)")
	goalCalcCmd.Flags().Float64Var(&goalTimeframe, "timeframe", 0, "weight loss timeframe in months")

	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalSetCommand("weight <kg>", "Log your current weight", models.GoalCurrentWeight))
	goalCmd.AddCommand(goalSetCommand("target <kg>", "Set your target weight", models.GoalTargetWeight))
	goalCmd.AddCommand(goalSetCommand("calories <kcal>", "Set your daily calorie goal", models.GoalDailyCalories))
	goalCmd.AddCommand(goalSetCommand("timeframe <months>", "Set your weight loss timeframe", models.GoalLossTimeframe))
	goalCmd.AddCommand(goalHistoryCmd)
	goalCmd.AddCommand(goalEditWeightCmd)
	goalCmd.AddCommand(goalDeleteWeightCmd)
	goalCmd.AddCommand(goalCalcCmd)
	rootCmd.AddCommand(goalCmd)
}
