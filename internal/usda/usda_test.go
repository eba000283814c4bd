// ABOUTME: Tests for the FoodData Central client against a stub server.
// ABOUTME: Covers flat and nested nutrient shapes plus miss cases.
package usda

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func stubServer(t *testing.T, foodBody string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/foods/search":
			if r.Method != http.MethodPost {
				t.Errorf("search used %s, want POST", r.Method)
			}
			fmt.Fprint(w, `{"foods":[{"fdcId":12345,"description":"Banana, raw"}]}`)
		case r.URL.Path == "/food/12345":
			fmt.Fprint(w, foodBody)
		default:
			t.Errorf("unexpected request path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.baseURL = srv.URL
	return c
}

func TestSuggestCaloriesFlatNutrient(t *testing.T) {
	c := stubServer(t, `{"description":"Banana, raw","foodNutrients":[
		{"nutrientName":"Protein","unitName":"G","value":1.1},
		{"nutrientName":"Energy","unitName":"KCAL","value":89.4}]}`)

	s, err := c.SuggestCalories(context.Background(), "banana")
	if err != nil {
		t.Fatalf("SuggestCalories: %v", err)
	}
	if s.Calories != 89 {
		t.Errorf("Calories = %d, want 89", s.Calories)
	}
	if s.Description != "Banana, raw" {
		t.Errorf("Description = %q, want %q", s.Description, "Banana, raw")
	}
}

func TestSuggestCaloriesNestedNutrient(t *testing.T) {
	c := stubServer(t, `{"foodNutrients":[
		{"nutrient":{"name":"Energy","unitName":"kcal"},"amount":250}]}`)

	s, err := c.SuggestCalories(context.Background(), "banana")
	if err != nil {
		t.Fatalf("SuggestCalories: %v", err)
	}
	if s.Calories != 250 {
		t.Errorf("Calories = %d, want 250", s.Calories)
	}
}

func TestSuggestCaloriesNoEnergy(t *testing.T) {
	c := stubServer(t, `{"foodNutrients":[{"nutrientName":"Protein","unitName":"G","value":1.1}]}`)

	if _, err := c.SuggestCalories(context.Background(), "banana"); err == nil {
		t.Fatal("expected error when energy nutrient is missing")
	}
}

func TestSuggestCaloriesNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"foods":[]}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.baseURL = srv.URL
	if _, err := c.SuggestCalories(context.Background(), "zzzz"); err == nil {
		t.Fatal("expected error for empty search result")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("USDA_API_KEY", "")
	if c := FromEnv(); c != nil {
		t.Error("FromEnv should return nil without USDA_API_KEY")
	}
	t.Setenv("USDA_API_KEY", "abc")
	if c := FromEnv(); c == nil {
		t.Error("FromEnv should return a client when USDA_API_KEY is set")
	}
}
