package dbhelper

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tastybites/tastybites/database"
	"github.com/tastybites/tastybites/models"
)

// OrderRequest is one customer's checkout: who they are and how many
// units of each menu item they want. Quantities of zero or less and ids
// not present in the catalog are ignored.
type OrderRequest struct {
	CustomerName string
	TableNo      string
	Phone        string
	Quantities   map[uuid.UUID]int
}

type orderLine struct {
	id    uuid.UUID
	name  string
	price int
	qty   int
}

// PlaceOrder validates the selection against live stock, decrements stock
// and inserts the order, all inside one transaction. The decrement is
// conditional (stock >= qty at write time), so two concurrent orders for
// the last unit cannot both succeed; the loser gets a
// StockInsufficientError and the whole transaction rolls back.
func PlaceOrder(req OrderRequest) (uuid.UUID, error) {
	name := req.CustomerName
	if name == "" {
		name = "Guest"
	}

	var orderID uuid.UUID
	txErr := database.Tx(func(tx *sql.Tx) error {
		selected, total, err := selectLines(tx, req.Quantities)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			return models.ErrEmptyOrder
		}

		for _, line := range selected {
			res, err := tx.Exec(`UPDATE menu_items SET stock = stock - $1 WHERE id = $2 AND stock >= $1`,
				line.qty, line.id)
			if err != nil {
				return fmt.Errorf("failed to decrement stock for %s: %w", line.name, err)
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to read decrement result: %w", err)
			}
			if affected == 0 {
				var available int
				if err := tx.QueryRow(`SELECT stock FROM menu_items WHERE id = $1`, line.id).Scan(&available); err != nil {
					return fmt.Errorf("failed to read stock for %s: %w", line.name, err)
				}
				return &models.StockInsufficientError{Item: line.name, Available: available}
			}
		}

		err = tx.QueryRow(`
			INSERT INTO orders (customer_name, table_no, total, status, phone, loyalty_points, paid)
			VALUES ($1, $2, $3, $4, $5, $6, FALSE)
			RETURNING id
		`, name, req.TableNo, total, models.StatusPending, req.Phone, models.LoyaltyPoints(total)).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		position := 0
		for _, line := range selected {
			for i := 0; i < line.qty; i++ {
				position++
				if _, err := tx.Exec(`INSERT INTO order_items (order_id, position, item_name, unit_price) VALUES ($1, $2, $3, $4)`,
					orderID, position, line.name, line.price); err != nil {
					return fmt.Errorf("failed to insert order item %s: %w", line.name, err)
				}
			}
		}
		return nil
	})
	if txErr != nil {
		return uuid.Nil, txErr
	}
	return orderID, nil
}

// selectLines walks the catalog in listing order and keeps the entries
// the request asks for with a positive quantity. Requested ids missing
// from the catalog simply never match.
func selectLines(tx *sql.Tx, quantities map[uuid.UUID]int) ([]orderLine, int, error) {
	rows, err := tx.Query(`SELECT id, name, price FROM menu_items ORDER BY category, name`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var selected []orderLine
	total := 0
	for rows.Next() {
		var line orderLine
		if err := rows.Scan(&line.id, &line.name, &line.price); err != nil {
			return nil, 0, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		qty := quantities[line.id]
		if qty <= 0 {
			continue
		}
		line.qty = qty
		selected = append(selected, line)
		total += line.price * qty
	}
	return selected, total, rows.Err()
}

// GetOrder loads an order with its expanded items snapshot.
func GetOrder(id uuid.UUID) (models.Order, error) {
	var o models.Order
	err := database.TastyBites.QueryRow(`
		SELECT id, customer_name, table_no, total, status, phone, loyalty_points, paid, created_at
		FROM orders WHERE id = $1
	`, id).Scan(&o.ID, &o.CustomerName, &o.TableNo, &o.Total, &o.Status, &o.Phone, &o.LoyaltyPoints, &o.Paid, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return o, models.ErrOrderNotFound
	} else if err != nil {
		return o, fmt.Errorf("failed to query order: %w", err)
	}

	o.Items, err = OrderItemNames(id)
	return o, err
}

// OrderItemNames returns the flat item-name snapshot, one entry per
// ordered unit, in order.
func OrderItemNames(orderID uuid.UUID) ([]string, error) {
	rows, err := database.TastyBites.Query(`SELECT item_name FROM order_items WHERE order_id = $1 ORDER BY position`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// MarkOrderReady flags the order as prepared. Unconditional and
// idempotent; paying later still overwrites the status to Paid.
func MarkOrderReady(id uuid.UUID) error {
	_, err := database.TastyBites.Exec(`UPDATE orders SET status = $1 WHERE id = $2`, models.StatusReady, id)
	return err
}

// ListOrders returns every order newest-first with items expanded, for
// the cook dashboard.
func ListOrders() ([]models.Order, error) {
	return scanOrders(`
		SELECT id, customer_name, table_no, total, status, phone, loyalty_points, paid, created_at
		FROM orders ORDER BY created_at DESC
	`)
}

func scanOrders(query string, args ...interface{}) ([]models.Order, error) {
	rows, err := database.TastyBites.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.TableNo, &o.Total, &o.Status, &o.Phone, &o.LoyaltyPoints, &o.Paid, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := OrderItemNames(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}
