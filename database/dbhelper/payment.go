package dbhelper

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tastybites/tastybites/database"
	"github.com/tastybites/tastybites/models"
)

// RecordPayment marks the order paid and appends the payment row in one
// transaction. Paying always forces status to Paid, even if the kitchen
// never marked the order Ready. A second attempt fails with
// ErrAlreadyPaid and inserts nothing.
func RecordPayment(orderID uuid.UUID) error {
	return database.Tx(func(tx *sql.Tx) error {
		var paid bool
		var total int
		err := tx.QueryRow(`SELECT paid, total FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&paid, &total)
		if err == sql.ErrNoRows {
			return models.ErrOrderNotFound
		} else if err != nil {
			return fmt.Errorf("failed to query order for payment: %w", err)
		}
		if paid {
			return models.ErrAlreadyPaid
		}

		if _, err := tx.Exec(`UPDATE orders SET paid = TRUE, status = $1 WHERE id = $2`,
			models.StatusPaid, orderID); err != nil {
			return fmt.Errorf("failed to mark order paid: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO payments (order_id, amount) VALUES ($1, $2)`,
			orderID, total); err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
		return nil
	})
}
