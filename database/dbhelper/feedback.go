package dbhelper

import (
	"github.com/google/uuid"

	"github.com/tastybites/tastybites/database"
)

// AddFeedback appends a rating and comment for an order. Feedback is
// independent of the order lifecycle and the order id is not required
// to exist. Out-of-range ratings fall back to 5.
func AddFeedback(orderID uuid.UUID, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		rating = 5
	}
	_, err := database.TastyBites.Exec(`INSERT INTO feedback (order_id, rating, comment) VALUES ($1, $2, $3)`,
		orderID, rating, comment)
	return err
}
