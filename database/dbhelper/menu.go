package dbhelper

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tastybites/tastybites/database"
	"github.com/tastybites/tastybites/models"
)

const menuColumns = `id, name, category, price, diet, calories, stock, created_at`

// ListAvailableItems returns in-stock items for the customer menu.
// Diet "Low-Calorie" is a calorie threshold, not a stored diet value;
// every other non-"All" diet and category matches exactly.
func ListAvailableItems(filter models.MenuFilter) ([]models.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE stock > 0`
	var args []interface{}

	if filter.Diet != "" && filter.Diet != "All" {
		if filter.Diet == models.DietLowCalorie {
			args = append(args, models.LowCalorieMax)
			query += fmt.Sprintf(" AND calories <= $%d", len(args))
		} else {
			args = append(args, filter.Diet)
			query += fmt.Sprintf(" AND diet = $%d", len(args))
		}
	}
	if filter.Category != "" && filter.Category != "All" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += ` ORDER BY category`

	return scanMenuItems(query, args...)
}

// ListAllItems returns every item regardless of stock, for management views.
func ListAllItems() ([]models.MenuItem, error) {
	return scanMenuItems(`SELECT ` + menuColumns + ` FROM menu_items ORDER BY category`)
}

func scanMenuItems(query string, args ...interface{}) ([]models.MenuItem, error) {
	rows, err := database.TastyBites.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Diet, &m.Calories, &m.Stock, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func CreateMenuItem(name, category string, price int, diet string, calories, stock int) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.TastyBites.QueryRow(`
		INSERT INTO menu_items (name, category, price, diet, calories, stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, name, category, price, diet, calories, stock).Scan(&id)
	return id, err
}

// DeleteMenuItem removes the item. Orders keep their name/price snapshots.
func DeleteMenuItem(id uuid.UUID) error {
	_, err := database.TastyBites.Exec(`DELETE FROM menu_items WHERE id = $1`, id)
	return err
}

// SetStock overwrites the stock level (admin correction).
func SetStock(id uuid.UUID, stock int) error {
	_, err := database.TastyBites.Exec(`UPDATE menu_items SET stock = $1 WHERE id = $2`, stock, id)
	return err
}

// Restock adds to the stock level. Non-positive amounts are a silent no-op.
func Restock(id uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}
	_, err := database.TastyBites.Exec(`UPDATE menu_items SET stock = stock + $1 WHERE id = $2`, amount, id)
	return err
}

// LowStockItems lists items at or below the threshold for the cook dashboard.
func LowStockItems(threshold int) ([]models.MenuItem, error) {
	return scanMenuItems(`SELECT `+menuColumns+` FROM menu_items WHERE stock <= $1 ORDER BY stock ASC`, threshold)
}

// Specials returns a few items for the landing page.
func Specials(limit int) ([]models.MenuItem, error) {
	return scanMenuItems(`SELECT `+menuColumns+` FROM menu_items LIMIT $1`, limit)
}
