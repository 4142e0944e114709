package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleCook  Role = "cook"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCook
}

// LoginPath is where an unauthenticated request for a role-gated page is sent.
func (r Role) LoginPath() string {
	if r == RoleAdmin {
		return "/admin_login"
	}
	return "/cook_login"
}

type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
