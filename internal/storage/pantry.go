// ABOUTME: Pantry inventory and shopping list storage.
// ABOUTME: Pantry weights are grams; shopping list is free-text lines.
package storage

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nutrilog/nutrilog/internal/models"
)

// AddPantryItem stores a pantry item with its weight in grams.
func (d *DB) AddPantryItem(p *models.PantryItem) error {
	_, err := d.db.Exec(`
		INSERT INTO pantry (id, item, weight) VALUES (?, ?, ?)
	`, p.ID.String(), p.Item, p.Weight)
	if err != nil {
		return fmt.Errorf("add pantry item: %w", err)
	}
	return nil
}

// ListPantryItems returns the pantry sorted by item name.
func (d *DB) ListPantryItems() ([]*models.PantryItem, error) {
	rows, err := d.db.Query(`SELECT id, item, weight FROM pantry ORDER BY item`)
	if err != nil {
		return nil, fmt.Errorf("list pantry: %w", err)
	}
	defer rows.Close()

	var items []*models.PantryItem
	for rows.Next() {
		var p models.PantryItem
		var idStr string
		if err := rows.Scan(&idStr, &p.Item, &p.Weight); err != nil {
			return nil, fmt.Errorf("scan pantry item: %w", err)
		}
		p.ID, _ = uuid.Parse(idStr)
		items = append(items, &p)
	}
	return items, rows.Err()
}

// UpdatePantryItem rewrites an item's weight by ID or prefix.
func (d *DB) UpdatePantryItem(idOrPrefix string, weight int) error {
	id, err := d.resolveID("pantry", idOrPrefix)
	if err != nil {
		return fmt.Errorf("update pantry item: %w", err)
	}
	if _, err := d.db.Exec(`UPDATE pantry SET weight = ? WHERE id = ?`, weight, id); err != nil {
		return fmt.Errorf("update pantry item: %w", err)
	}
	return nil
}

// DeletePantryItem removes an item by ID or prefix.
func (d *DB) DeletePantryItem(idOrPrefix string) error {
	id, err := d.resolveID("pantry", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete pantry item: %w", err)
	}
	if _, err := d.db.Exec(`DELETE FROM pantry WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete pantry item: %w", err)
	}
	return nil
}

// AddShoppingItem appends one line to the shopping list.
func (d *DB) AddShoppingItem(s *models.ShoppingItem) error {
	_, err := d.db.Exec(`
		INSERT INTO shopping_list (id, item) VALUES (?, ?)
	`, s.ID.String(), s.Item)
	if err != nil {
		return fmt.Errorf("add shopping item: %w", err)
	}
	return nil
}

// ListShoppingItems returns the shopping list in insertion order.
func (d *DB) ListShoppingItems() ([]*models.ShoppingItem, error) {
	rows, err := d.db.Query(`SELECT id, item FROM shopping_list ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list shopping: %w", err)
	}
	defer rows.Close()

	var items []*models.ShoppingItem
	for rows.Next() {
		var s models.ShoppingItem
		var idStr string
		if err := rows.Scan(&idStr, &s.Item); err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		s.ID, _ = uuid.Parse(idStr)
		items = append(items, &s)
	}
	return items, rows.Err()
}

// DeleteShoppingItem removes one line by ID or prefix.
func (d *DB) DeleteShoppingItem(idOrPrefix string) error {
	id, err := d.resolveID("shopping_list", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete shopping item: %w", err)
	}
	if _, err := d.db.Exec(`DELETE FROM shopping_list WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete shopping item: %w", err)
	}
	return nil
}

// ClearShoppingList removes every line, returning the number removed.
func (d *DB) ClearShoppingList() (int64, error) {
	result, err := d.db.Exec(`DELETE FROM shopping_list`)
	if err != nil {
		return 0, fmt.Errorf("clear shopping list: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear shopping list: %w", err)
	}
	return affected, nil
}
