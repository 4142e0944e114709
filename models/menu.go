package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryStarters = "Starters"
	CategoryMains    = "Main Course"
	CategoryDesserts = "Desserts"
)

const (
	DietVeg    = "Veg"
	DietNonVeg = "Non-Veg"
	DietJain   = "Jain"

	// DietLowCalorie is a derived filter (calories <= LowCalorieMax),
	// never a stored diet value.
	DietLowCalorie = "Low-Calorie"

	LowCalorieMax = 400
)

type MenuItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category"`
	Price     int       `db:"price" json:"price"`
	Diet      string    `db:"diet" json:"diet"`
	Calories  int       `db:"calories" json:"calories"`
	Stock     int       `db:"stock" json:"stock"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MenuFilter narrows the customer-facing menu listing. "All" or the empty
// string on either field means no constraint.
type MenuFilter struct {
	Diet     string
	Category string
}
