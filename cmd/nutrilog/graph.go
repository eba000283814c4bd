// ABOUTME: Terminal calorie graph: stacked intake/burn/overburn bars per day.
// ABOUTME: Days over the daily calorie goal are highlighted in the listing.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/nutrilog/nutrilog/internal/analytics"
	"github.com/nutrilog/nutrilog/internal/models"
	"github.com/spf13/cobra"
)

// barWidth is the character budget for one side of the axis.
const barWidth = 40

var graphCmd = &cobra.Command{
	Use:   "graph [timeframe]",
	Short: "Show the calorie graph for a timeframe",
	Long: `Render daily calories as stacked bars: intake to the right of the
axis, burned to the left. On days where you burned more than you ate,
the extra burn shows as a separate overburn band so the bar still sums
to your net.

Days exceeding the daily calorie goal are marked with '!'.

Timeframes: 1w (default), 2w, 1m, 3m, 1y, all

Examples:
  nutrilog graph
  nutrilog graph 1m`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tf := analytics.ParseTimeframe(timeframeArg(args))

		earliestFood, err := repo.GetEarliestFoodDate()
		if err != nil {
			return fmt.Errorf("failed to resolve range: %w", err)
		}
		earliestExercise, err := repo.GetEarliestExerciseDate()
		if err != nil {
			return fmt.Errorf("failed to resolve range: %w", err)
		}
		earliest := analytics.EarliestOf(earliestFood, earliestExercise)

		start, end := analytics.Resolve(tf, models.Today(), earliest)
		startStr, endStr := models.FormatDate(start), models.FormatDate(end)

		foodTotals, err := repo.GetFoodDailyTotals(startStr, endStr)
		if err != nil {
			return fmt.Errorf("failed to load food totals: %w", err)
		}
		exerciseTotals, err := repo.GetExerciseDailyTotals(startStr, endStr)
		if err != nil {
			return fmt.Errorf("failed to load exercise totals: %w", err)
		}

		bundle := analytics.BuildDailySeries(start, end, []analytics.SeriesInput{
			{Label: "intake", Policy: analytics.FillZero, Totals: analytics.TotalsMap(foodTotals)},
			{Label: "burn", Policy: analytics.FillZero, Totals: analytics.TotalsMap(exerciseTotals)},
		})
		if bundle.Len() == 0 || (len(foodTotals) == 0 && len(exerciseTotals) == 0) {
			fmt.Println("No data for selected range.")
			return nil
		}

		decomp := analytics.DecomposeCalories(bundle.Series[0].Values, bundle.Series[1].Values)

		goals, err := repo.GetGoals()
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}

		renderGraph(bundle.Dates, decomp, goals.DailyCalorieGoal)
		return nil
	},
}

// renderGraph draws one line per day with burn bands left of the axis
// and intake right of it, scaled to the largest band in the range.
func renderGraph(dates []string, d *analytics.Decomposition, calorieGoal *float64) {
	maxVal := 1.0
	for i := range d.Intake {
		if d.Intake[i] > maxVal {
			maxVal = d.Intake[i]
		}
		if burn := -(d.Burn[i] + d.Overburn[i]); burn > maxVal {
			maxVal = burn
		}
	}
	scale := float64(barWidth) / maxVal

	intakeColor := color.New(color.FgGreen)
	burnColor := color.New(color.FgRed)
	overburnColor := color.New(color.FgYellow)
	faint := color.New(color.Faint)

	for i, date := range dates {
		burnCells := int(-d.Burn[i]*scale + 0.5)
		overCells := int(-d.Overburn[i]*scale + 0.5)
		intakeCells := int(d.Intake[i]*scale + 0.5)

		left := strings.Repeat(" ", barWidth-burnCells-overCells) +
			overburnColor.Sprint(strings.Repeat("▒", overCells)) +
			burnColor.Sprint(strings.Repeat("█", burnCells))
		right := intakeColor.Sprint(strings.Repeat("█", intakeCells))

		marker := " "
		if calorieGoal != nil && d.Intake[i] > *calorieGoal {
			marker = color.RedString("!")
		}

		fmt.Printf("%s %s|%s %s%s\n",
			faint.Sprint(date), left, right,
			fmt.Sprintf("net %+d", int(d.Net[i])), marker)
	}

	fmt.Printf("\n%s intake  %s burned  %s overburn",
		intakeColor.Sprint("█"), burnColor.Sprint("█"), overburnColor.Sprint("▒"))
	if calorieGoal != nil {
		fmt.Printf("  %s over %d kcal goal", color.RedString("!"), int(*calorieGoal))
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
