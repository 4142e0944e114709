package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusPending OrderStatus = "Pending"
	StatusReady   OrderStatus = "Ready"
	StatusPaid    OrderStatus = "Paid"
)

// LoyaltyDivisor: one loyalty point per this many currency units spent.
const LoyaltyDivisor = 50

type Order struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	CustomerName  string      `db:"customer_name" json:"customer_name"`
	TableNo       string      `db:"table_no" json:"table_no"`
	Items         []string    `db:"-" json:"items"`
	Total         int         `db:"total" json:"total"`
	Status        OrderStatus `db:"status" json:"status"`
	Phone         string      `db:"phone" json:"phone"`
	LoyaltyPoints int         `db:"loyalty_points" json:"loyalty_points"`
	Paid          bool        `db:"paid" json:"paid"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
}

// OrderLine is one ordered unit, a snapshot of the menu item's name and
// price at order time. Later renames or deletes of the menu item do not
// touch it.
type OrderLine struct {
	ID        int64     `db:"id" json:"id"`
	OrderID   uuid.UUID `db:"order_id" json:"order_id"`
	Position  int       `db:"position" json:"position"`
	ItemName  string    `db:"item_name" json:"item_name"`
	UnitPrice int       `db:"unit_price" json:"unit_price"`
}

type Payment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	OrderID      uuid.UUID `db:"order_id" json:"order_id"`
	Amount       int       `db:"amount" json:"amount"`
	PaidAt       time.Time `db:"paid_at" json:"paid_at"`
	CustomerName string    `db:"-" json:"customer_name,omitempty"`
}

type Feedback struct {
	ID        int64     `db:"id" json:"id"`
	OrderID   uuid.UUID `db:"order_id" json:"order_id"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func LoyaltyPoints(total int) int {
	if total < 0 {
		return 0
	}
	return total / LoyaltyDivisor
}
