// ABOUTME: CLI commands for the sleep diary: log nights and show statistics.
// ABOUTME: Stats partition nights into overall/weekday/weekend buckets.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/nutrilog/nutrilog/internal/analytics"
	"github.com/nutrilog/nutrilog/internal/models"
	"github.com/spf13/cobra"
)

var sleepDate string

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Track sleep nights",
}

var sleepAddCmd = &cobra.Command{
	Use:   "add <bedtime> <wakeup>",
	Short: "Log a sleep night",
	Long: `Log a night with bedtime and wakeup clocks ("HH:mm", 24-hour).

A wakeup at or before the bedtime is treated as the following day, so
"23:30 07:00" records exactly seven and a half hours.

Examples:
  nutrilog sleep add 23:00 07:00
  nutrilog sleep add 01:15 09:00 --date 2025-03-09`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bedtime, err := models.ParseClock(args[0])
		if err != nil {
			return err
		}
		wakeup, err := models.ParseClock(args[1])
		if err != nil {
			return err
		}
		date, err := entryDate(sleepDate)
		if err != nil {
			return err
		}

		duration := models.SleepDurationFromClocks(bedtime, wakeup)
		n := models.NewSleepNight(date, bedtime, wakeup, duration)
		if err := repo.CreateSleepNight(n); err != nil {
			return fmt.Errorf("failed to create sleep night: %w", err)
		}

		color.Green("✓ Logged night of %s", models.FormatDate(n.Date))
		fmt.Printf("  %s %s → %s (%s)\n",
			color.New(color.Faint).Sprint(n.ID.String()[:8]),
			models.FormatClock(n.Bedtime), models.FormatClock(n.Wakeup),
			formatDuration(n.Duration))
		return nil
	},
}

var sleepListCmd = &cobra.Command{
	Use:     "list [timeframe]",
	Aliases: []string{"ls"},
	Short:   "List sleep nights in a timeframe",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nights, _, err := sleepNightsFor(timeframeArg(args))
		if err != nil {
			return err
		}
		if len(nights) == 0 {
			fmt.Println("No sleep entries for selected range.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, n := range nights {
			fmt.Printf("%s %s  %s → %s  %s\n",
				faint.Sprint(n.ID.String()[:8]),
				models.FormatDate(n.Date),
				models.FormatClock(n.Bedtime), models.FormatClock(n.Wakeup),
				formatDuration(n.Duration))
		}
		return nil
	},
}

var sleepEditCmd = &cobra.Command{
	Use:   "edit <id> <bedtime> <wakeup>",
	Short: "Correct a night's clocks by ID or prefix",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		bedtime, err := models.ParseClock(args[1])
		if err != nil {
			return err
		}
		wakeup, err := models.ParseClock(args[2])
		if err != nil {
			return err
		}
		if err := repo.UpdateSleepNight(args[0], bedtime, wakeup); err != nil {
			return err
		}
		color.Green("✓ Updated %s", args[0])
		return nil
	},
}

var sleepDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a sleep night by ID or prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteSleepNight(args[0]); err != nil {
			return err
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

var sleepStatsCmd = &cobra.Command{
	Use:   "stats [timeframe]",
	Short: "Show sleep statistics for a timeframe",
	Long: `Show average bedtime, wakeup, and duration over a timeframe,
split into overall, weekday, and weekend nights. Weekend nights are
those dated Saturday or Sunday.

Timeframes: 1w (default), 2w, 1m, 3m, 1y, all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nights, label, err := sleepNightsFor(timeframeArg(args))
		if err != nil {
			return err
		}

		stats := analytics.ComputeSleepStats(toNights(nights))

		fmt.Printf("Sleep Statistics — %s\n\n", label)
		printBucket("Overall", stats.Overall)
		printBucket("Weekdays", stats.Weekday)
		printBucket("Weekends", stats.Weekend)
		fmt.Printf("\n%s %s\n", padRight("7-9h streak:", 14), stats.StreakDisplay())
		fmt.Printf("%s %s of each day asleep\n", padRight("Time asleep:", 14), stats.PercentOfDayDisplay())
		return nil
	},
}

// sleepNightsFor resolves a timeframe against the diary's earliest night
// and returns the nights in range plus the timeframe's display label.
func sleepNightsFor(tf string) ([]*models.SleepNight, string, error) {
	timeframe := analytics.ParseTimeframe(tf)

	earliest, err := repo.GetEarliestSleepDate()
	if err != nil {
		return nil, "", fmt.Errorf("failed to find earliest sleep date: %w", err)
	}

	start, end := analytics.Resolve(timeframe, models.Today(), earliest)
	nights, err := repo.ListSleepNights(models.FormatDate(start), models.FormatDate(end))
	if err != nil {
		return nil, "", fmt.Errorf("failed to list sleep nights: %w", err)
	}
	return nights, timeframe.Label(), nil
}

func toNights(nights []*models.SleepNight) []analytics.Night {
	out := make([]analytics.Night, len(nights))
	for i, n := range nights {
		out[i] = analytics.Night{
			Date:     n.Date,
			Bedtime:  n.Bedtime,
			Wakeup:   n.Wakeup,
			Duration: n.Duration,
		}
	}
	return out
}

func printBucket(name string, b analytics.BucketStats) {
	fmt.Printf("%s bed %s  wake %s  avg %s  (%d nights)\n",
		padRight(name+":", 14),
		b.BedtimeDisplay(), b.WakeupDisplay(), b.DurationDisplay(), b.Nights)
}

// formatDuration renders minutes as the truncating "Xh Ym" display form.
func formatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// timeframeArg returns the optional positional timeframe, defaulting to 1w.
func timeframeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "1w"
}

func init() {
	sleepAddCmd.Flags().StringVar(&sleepDate, "date", "", "sleep date (yyyy-MM-dd), defaults to today")

	sleepCmd.AddCommand(sleepAddCmd)
	sleepCmd.AddCommand(sleepListCmd)
	sleepCmd.AddCommand(sleepEditCmd)
	sleepCmd.AddCommand(sleepDeleteCmd)
	sleepCmd.AddCommand(sleepStatsCmd)
	rootCmd.AddCommand(sleepCmd)
}
