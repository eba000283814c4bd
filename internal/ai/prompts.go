// ABOUTME: Prompt builders for calorie goal, meal plan, and shopping list.
// ABOUTME: Numeric answers are requested as bare numbers with no prose.
package ai

import (
	"fmt"
	"strings"
)

// CalorieGoalInput holds the personal details behind a calorie goal
// calculation.
type CalorieGoalInput struct {
	Age             int
	Gender          string
	HeightCm        float64
	ActivityLevel   string
	CurrentWeightKg float64
	TargetWeightKg  float64
	TimeframeMonths float64
}

// BuildCalorieGoalPrompt asks for a daily calorie goal as a bare number.
func BuildCalorieGoalPrompt(in CalorieGoalInput) string {
	return fmt.Sprintf(
		"Calculate the daily calorie goal for a %d year old %s with a height of %g cm and an activity level of %s. "+
			"They are currently %g kg and the target weight is %g kg over a timeframe of %g months. "+
			"Please tailor your response in the format of only the numerical value of the daily calorie goal and nothing else.",
		in.Age, in.Gender, in.HeightCm, in.ActivityLevel,
		in.CurrentWeightKg, in.TargetWeightKg, in.TimeframeMonths)
}

// MealPlanOptions selects the criteria for a meal plan suggestion.
// Criteria are free-form adjectives like "healthy" or "vegetarian".
type MealPlanOptions struct {
	Criteria    []string
	PantryItems []string
	CurrentPlan string
}

// BuildMealPlanPrompt asks for a day's meal plan covering breakfast,
// lunch, and dinner, optionally constrained by criteria and pantry stock.
func BuildMealPlanPrompt(opts MealPlanOptions) string {
	var sb strings.Builder
	sb.WriteString("Can you suggest a meal plan for the day by giving me suggestions on what to eat? ")
	sb.WriteString("The meal plan should include breakfast, lunch, dinner. ")
	sb.WriteString("Please just provide the meal plan and nothing else. ")

	if len(opts.PantryItems) > 0 {
		sb.WriteString("I have the following items in my pantry: ")
		sb.WriteString(strings.Join(opts.PantryItems, ", "))
		sb.WriteString(". ")
	}
	if len(opts.Criteria) > 0 {
		sb.WriteString("I want the meal plan to be ")
		sb.WriteString(strings.Join(opts.Criteria, ", "))
		sb.WriteString(". ")
	}
	if opts.CurrentPlan != "" {
		sb.WriteString("The current meal plan is: ")
		sb.WriteString(opts.CurrentPlan)
		sb.WriteString(". You can use this as a starting point, make changes to it or scrap it entirely if it doesnt fit the criteria.")
	}
	return sb.String()
}

// BuildShoppingListPrompt asks for an itemised ingredient list covering
// the given weekday plans. Keys iterate in the order provided.
func BuildShoppingListPrompt(days []string, plans map[string]string) string {
	var sb strings.Builder
	for _, day := range days {
		if text := plans[day]; text != "" {
			sb.WriteString(fmt.Sprintf("%s: %s\n", day, text))
		}
	}
	return "Generate a shopping list of ingredients based on these meal plans: " +
		sb.String() +
		"Please only provide an itemised list of ingredients and nothing else."
}

// ParseShoppingList splits an AI shopping list response into items,
// dropping blank lines, headers, and list bullets.
func ParseShoppingList(response string) []string {
	var items []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		// Headers often come back bold, so strip trailing asterisks
		// before the colon check catches them.
		line = strings.TrimSpace(strings.TrimRight(line, "*"))
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		items = append(items, line)
	}
	return items
}
