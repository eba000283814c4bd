// ABOUTME: CLI commands for pantry stock and the shopping list.
// ABOUTME: The shopping list can be generated from the meal plan with AI.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/nutrilog/nutrilog/internal/ai"
	"github.com/nutrilog/nutrilog/internal/models"
	"github.com/spf13/cobra"
)

var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Manage pantry stock",
}

var pantryAddCmd = &cobra.Command{
	Use:   "add <item> <grams>",
	Short: "Add a pantry item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.Atoi(args[1])
		if err != nil || weight < 0 {
			return fmt.Errorf("invalid weight: %s", args[1])
		}

		p := &models.PantryItem{ID: uuid.New(), Item: args[0], Weight: weight}
		if err := repo.AddPantryItem(p); err != nil {
			return fmt.Errorf("failed to add pantry item: %w", err)
		}

		color.Green("✓ Added %s (%dg)", p.Item, p.Weight)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(p.ID.String()[:8]))
		return nil
	},
}

var pantryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List pantry items",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := repo.ListPantryItems()
		if err != nil {
			return fmt.Errorf("failed to list pantry: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Pantry is empty.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range items {
			fmt.Printf("%s %s %dg\n",
				faint.Sprint(p.ID.String()[:8]),
				padRight(truncate(p.Item, 30), 32), p.Weight)
		}
		return nil
	},
}

var pantryUpdateCmd = &cobra.Command{
	Use:   "update <id> <grams>",
	Short: "Update a pantry item's weight",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.Atoi(args[1])
		if err != nil || weight < 0 {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		if err := repo.UpdatePantryItem(args[0], weight); err != nil {
			return err
		}
		color.Green("✓ Updated %s", args[0])
		return nil
	},
}

var pantryDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a pantry item by ID or prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeletePantryItem(args[0]); err != nil {
			return err
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

var shoppingCmd = &cobra.Command{
	Use:     "shopping",
	Aliases: []string{"shop"},
	Short:   "Manage the shopping list",
}

var shoppingAddCmd = &cobra.Command{
	Use:   "add <item>",
	Short: "Add a shopping list item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &models.ShoppingItem{ID: uuid.New(), Item: args[0]}
		if err := repo.AddShoppingItem(s); err != nil {
			return fmt.Errorf("failed to add shopping item: %w", err)
		}
		color.Green("✓ Added %s", s.Item)
		return nil
	},
}

var shoppingListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := repo.ListShoppingItems()
		if err != nil {
			return fmt.Errorf("failed to list shopping items: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Shopping list is empty.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range items {
			fmt.Printf("%s %s\n", faint.Sprint(s.ID.String()[:8]), s.Item)
		}
		return nil
	},
}

var shoppingDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a shopping list item by ID or prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteShoppingItem(args[0]); err != nil {
			return err
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

var shoppingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := repo.ClearShoppingList()
		if err != nil {
			return fmt.Errorf("failed to clear shopping list: %w", err)
		}
		color.Green("✓ Removed %d items", n)
		return nil
	},
}

var shoppingGenerateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the shopping list from the meal plan with AI",
	Long: `Ask the configured AI provider for an itemised ingredient list
covering every planned day, and append the items to the shopping list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := repo.GetMealPlan()
		if err != nil {
			return fmt.Errorf("failed to load meal plan: %w", err)
		}

		planned := false
		for _, day := range models.Weekdays {
			if plan[day] != "" {
				planned = true
				break
			}
		}
		if !planned {
			return fmt.Errorf("meal plan is empty; fill a day first with 'nutrilog plan set'")
		}

		ctx := cmd.Context()
		provider, err := ai.NewProvider(ctx, cfg.GetAIProvider(), cfg.AIModel)
		if err != nil {
			return err
		}
		worker := ai.NewWorker(provider)

		fmt.Printf("Asking %s...\n", provider.Name())
		response, err := worker.Ask(ctx, ai.BuildShoppingListPrompt(models.Weekdays, plan))
		if err != nil {
			return fmt.Errorf("AI request failed: %w", err)
		}

		items := ai.ParseShoppingList(response)
		if len(items) == 0 {
			return fmt.Errorf("AI response contained no list items")
		}
		for _, item := range items {
			s := &models.ShoppingItem{ID: uuid.New(), Item: item}
			if err := repo.AddShoppingItem(s); err != nil {
				return fmt.Errorf("failed to add shopping item: %w", err)
			}
		}

		color.Green("✓ Added %d items", len(items))
		return nil
	},
}

func init() {
	pantryCmd.AddCommand(pantryAddCmd)
	pantryCmd.AddCommand(pantryListCmd)
	pantryCmd.AddCommand(pantryUpdateCmd)
	pantryCmd.AddCommand(pantryDeleteCmd)
	rootCmd.AddCommand(pantryCmd)

	shoppingCmd.AddCommand(shoppingAddCmd)
	shoppingCmd.AddCommand(shoppingListCmd)
	shoppingCmd.AddCommand(shoppingDeleteCmd)
	shoppingCmd.AddCommand(shoppingClearCmd)
	shoppingCmd.AddCommand(shoppingGenerateCmd)
	rootCmd.AddCommand(shoppingCmd)
}
