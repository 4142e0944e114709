package dbhelper

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tastybites/tastybites/database"
	"github.com/tastybites/tastybites/models"
)

// GetUserByCredentials authenticates a staff login. The stored password
// is a bcrypt hash; a missing user, a wrong password, and a wrong role
// all fail the same way.
func GetUserByCredentials(username, password string, role models.Role) (models.User, error) {
	var u models.User
	err := database.TastyBites.QueryRow(`
		SELECT id, username, password, role, created_at
		FROM users WHERE username = $1 AND role = $2
	`, username, role).Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrInvalidCredentials
	} else if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return models.User{}, models.ErrInvalidCredentials
	}
	return u, nil
}
