// ABOUTME: Tests for meal plan, pantry, and shopping list storage.
// ABOUTME: The plan is a single row; absent row reads as an empty week.
package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nutrilog/nutrilog/internal/models"
)

func TestMealPlanEmptyByDefault(t *testing.T) {
	db := setupTestDB(t)

	plan, err := db.GetMealPlan()
	if err != nil {
		t.Fatalf("GetMealPlan failed: %v", err)
	}
	if len(plan) != 7 {
		t.Fatalf("Expected 7 weekdays, got %d", len(plan))
	}
	for day, text := range plan {
		if text != "" {
			t.Errorf("Expected empty plan for %s, got %q", day, text)
		}
	}
}

func TestSetMealPlanDay(t *testing.T) {
	db := setupTestDB(t)

	if err := db.SetMealPlanDay("monday", "chicken stir fry"); err != nil {
		t.Fatalf("SetMealPlanDay failed: %v", err)
	}
	if err := db.SetMealPlanDay("fri", "pizza night"); err != nil {
		t.Fatalf("SetMealPlanDay failed: %v", err)
	}

	plan, err := db.GetMealPlan()
	if err != nil {
		t.Fatalf("GetMealPlan failed: %v", err)
	}
	if plan["Monday"] != "chicken stir fry" {
		t.Errorf("Monday mismatch: %q", plan["Monday"])
	}
	if plan["Friday"] != "pizza night" {
		t.Errorf("Friday mismatch: %q", plan["Friday"])
	}
	if plan["Tuesday"] != "" {
		t.Errorf("Tuesday should stay empty, got %q", plan["Tuesday"])
	}
}

func TestSetMealPlanDayRejectsAmbiguous(t *testing.T) {
	db := setupTestDB(t)

	if err := db.SetMealPlanDay("t", "anything"); err == nil {
		t.Error("Expected error for ambiguous weekday prefix")
	}
	if err := db.SetMealPlanDay("noday", "anything"); err == nil {
		t.Error("Expected error for unknown weekday")
	}
}

func TestSetWholeWeekAndClear(t *testing.T) {
	db := setupTestDB(t)

	week := map[string]string{
		"Monday":  "salmon",
		"Tuesday": "pasta",
	}
	if err := db.SetMealPlan(week); err != nil {
		t.Fatalf("SetMealPlan failed: %v", err)
	}

	plan, err := db.GetMealPlan()
	if err != nil {
		t.Fatalf("GetMealPlan failed: %v", err)
	}
	if plan["Monday"] != "salmon" || plan["Tuesday"] != "pasta" {
		t.Errorf("Plan mismatch: %+v", plan)
	}
	if plan["Wednesday"] != "" {
		t.Errorf("Unset day should be empty, got %q", plan["Wednesday"])
	}

	if err := db.ClearMealPlan(); err != nil {
		t.Fatalf("ClearMealPlan failed: %v", err)
	}
	plan, err = db.GetMealPlan()
	if err != nil {
		t.Fatalf("GetMealPlan failed: %v", err)
	}
	if plan["Monday"] != "" {
		t.Errorf("Expected cleared plan, got %q", plan["Monday"])
	}
}

func TestPantryCRUD(t *testing.T) {
	db := setupTestDB(t)

	item := &models.PantryItem{ID: uuid.New(), Item: "rice", Weight: 1000}
	if err := db.AddPantryItem(item); err != nil {
		t.Fatalf("AddPantryItem failed: %v", err)
	}

	items, err := db.ListPantryItems()
	if err != nil {
		t.Fatalf("ListPantryItems failed: %v", err)
	}
	if len(items) != 1 || items[0].Item != "rice" || items[0].Weight != 1000 {
		t.Fatalf("Unexpected pantry: %+v", items)
	}

	if err := db.UpdatePantryItem(item.ID.String()[:8], 750); err != nil {
		t.Fatalf("UpdatePantryItem failed: %v", err)
	}
	items, _ = db.ListPantryItems()
	if items[0].Weight != 750 {
		t.Errorf("Expected weight 750, got %d", items[0].Weight)
	}

	if err := db.DeletePantryItem(item.ID.String()[:8]); err != nil {
		t.Fatalf("DeletePantryItem failed: %v", err)
	}
	items, _ = db.ListPantryItems()
	if len(items) != 0 {
		t.Errorf("Expected empty pantry, got %d items", len(items))
	}
}

func TestShoppingList(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"milk", "eggs", "bread"} {
		s := &models.ShoppingItem{ID: uuid.New(), Item: name}
		if err := db.AddShoppingItem(s); err != nil {
			t.Fatalf("AddShoppingItem failed: %v", err)
		}
	}

	items, err := db.ListShoppingItems()
	if err != nil {
		t.Fatalf("ListShoppingItems failed: %v", err)
	}
	if len(items) != 3 || items[0].Item != "milk" {
		t.Fatalf("Unexpected list: %+v", items)
	}

	removed, err := db.ClearShoppingList()
	if err != nil {
		t.Fatalf("ClearShoppingList failed: %v", err)
	}
	if removed != 3 {
		t.Errorf("Expected 3 removed, got %d", removed)
	}
}
