// ABOUTME: Tests for prompt builders and response parsing.
// ABOUTME: Prompts must pin the bare-number and itemised-list contracts.
package ai

import (
	"strings"
	"testing"
)

func TestBuildCalorieGoalPrompt(t *testing.T) {
	prompt := BuildCalorieGoalPrompt(CalorieGoalInput{
		Age:             30,
		Gender:          "male",
		HeightCm:        180,
		ActivityLevel:   "moderate",
		CurrentWeightKg: 85,
		TargetWeightKg:  80,
		TimeframeMonths: 3,
	})

	for _, want := range []string{
		"30 year old male",
		"height of 180 cm",
		"activity level of moderate",
		"currently 85 kg",
		"target weight is 80 kg",
		"timeframe of 3 months",
		"only the numerical value",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildMealPlanPromptBase(t *testing.T) {
	prompt := BuildMealPlanPrompt(MealPlanOptions{})

	if !strings.Contains(prompt, "breakfast, lunch, dinner") {
		t.Errorf("Prompt missing meal types:\n%s", prompt)
	}
	if strings.Contains(prompt, "pantry") {
		t.Errorf("Base prompt should not mention pantry:\n%s", prompt)
	}
}

func TestBuildMealPlanPromptWithOptions(t *testing.T) {
	prompt := BuildMealPlanPrompt(MealPlanOptions{
		Criteria:    []string{"healthy", "cheap"},
		PantryItems: []string{"rice", "chicken"},
		CurrentPlan: "Monday: pasta",
	})

	if !strings.Contains(prompt, "items in my pantry: rice, chicken") {
		t.Errorf("Prompt missing pantry items:\n%s", prompt)
	}
	if !strings.Contains(prompt, "meal plan to be healthy, cheap") {
		t.Errorf("Prompt missing criteria:\n%s", prompt)
	}
	if !strings.Contains(prompt, "current meal plan is: Monday: pasta") {
		t.Errorf("Prompt missing current plan:\n%s", prompt)
	}
}

func TestBuildShoppingListPrompt(t *testing.T) {
	days := []string{"Monday", "Tuesday", "Wednesday"}
	plans := map[string]string{
		"Monday":  "pasta",
		"Tuesday": "",
	}
	prompt := BuildShoppingListPrompt(days, plans)

	if !strings.Contains(prompt, "Monday: pasta\n") {
		t.Errorf("Prompt missing Monday plan:\n%s", prompt)
	}
	if strings.Contains(prompt, "Tuesday") {
		t.Errorf("Empty days should be skipped:\n%s", prompt)
	}
	if !strings.Contains(prompt, "itemised list") {
		t.Errorf("Prompt missing format instruction:\n%s", prompt)
	}
}

func TestParseShoppingList(t *testing.T) {
	response := `**Shopping List:**
- eggs
* milk

bread
Produce:
• spinach`

	items := ParseShoppingList(response)
	want := []string{"eggs", "milk", "bread", "spinach"}
	if len(items) != len(want) {
		t.Fatalf("Expected %d items, got %d: %v", len(want), len(items), items)
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("Item %d: expected %q, got %q", i, w, items[i])
		}
	}
}
