package dbhelper

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tastybites/tastybites/database"
	"github.com/tastybites/tastybites/models"
)

type DailySales struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

type ItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type InventoryLevel struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Stock int       `json:"stock"`
}

// SalesByDay sums order totals per calendar date, ascending.
func SalesByDay() ([]DailySales, error) {
	rows, err := database.TastyBites.Query(`
		SELECT created_at::date AS day, SUM(total)
		FROM orders GROUP BY day ORDER BY day
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []DailySales
	for rows.Next() {
		var day time.Time
		var total int
		if err := rows.Scan(&day, &total); err != nil {
			return nil, fmt.Errorf("failed to scan sales row: %w", err)
		}
		sales = append(sales, DailySales{Date: day.Format("2006-01-02"), Total: total})
	}
	return sales, rows.Err()
}

// PopularItems counts every ordered unit per item name across all orders
// ever placed, most ordered first. Ties break on name for a stable order.
func PopularItems(limit int) ([]ItemCount, error) {
	rows, err := database.TastyBites.Query(`
		SELECT item_name, COUNT(*) AS cnt
		FROM order_items
		GROUP BY item_name
		ORDER BY cnt DESC, item_name
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular items: %w", err)
	}
	defer rows.Close()

	var counts []ItemCount
	for rows.Next() {
		var ic ItemCount
		if err := rows.Scan(&ic.Name, &ic.Count); err != nil {
			return nil, fmt.Errorf("failed to scan popularity row: %w", err)
		}
		counts = append(counts, ic)
	}
	return counts, rows.Err()
}

// InventoryLevels lists current stock per item, by name.
func InventoryLevels() ([]InventoryLevel, error) {
	rows, err := database.TastyBites.Query(`SELECT id, name, stock FROM menu_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var levels []InventoryLevel
	for rows.Next() {
		var lv InventoryLevel
		if err := rows.Scan(&lv.ID, &lv.Name, &lv.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		levels = append(levels, lv)
	}
	return levels, rows.Err()
}

// RecentOrders returns the newest orders with items expanded.
func RecentOrders(limit int) ([]models.Order, error) {
	return scanOrders(`
		SELECT id, customer_name, table_no, total, status, phone, loyalty_points, paid, created_at
		FROM orders ORDER BY created_at DESC LIMIT $1
	`, limit)
}

// RecentPayments returns the newest payments joined with the paying
// order's customer name.
func RecentPayments(limit int) ([]models.Payment, error) {
	rows, err := database.TastyBites.Query(`
		SELECT p.id, p.order_id, p.amount, p.paid_at, o.customer_name
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		ORDER BY p.paid_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.PaidAt, &p.CustomerName); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
