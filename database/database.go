package database

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastybites/tastybites/config"
	"github.com/tastybites/tastybites/models"
)

// TastyBites is the shared database handle. The database is the sole
// source of truth; every service reads and writes through it.
var TastyBites *sql.DB

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

func ConnectAndMigrate() error {
	db, err := sql.Open("postgres", config.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	TastyBites = db

	if err := runMigrations(db); err != nil {
		return err
	}
	return seed()
}

func ShutdownDatabase() error {
	return TastyBites.Close()
}

// Tx runs fn inside a transaction, committing only if fn returns nil.
func Tx(fn func(tx *sql.Tx) error) error {
	tx, err := TastyBites.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Error("failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// seed inserts the two staff accounts and the demo menu on an empty
// database. Passwords are stored as bcrypt hashes; the demo credentials
// are admin/adminpass and cook/cookpass.
func seed() error {
	return Tx(func(tx *sql.Tx) error {
		var users int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if users == 0 {
			seedUsers := []struct {
				username, password string
				role               models.Role
			}{
				{"admin", "adminpass", models.RoleAdmin},
				{"cook", "cookpass", models.RoleCook},
			}
			for _, u := range seedUsers {
				hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
				if err != nil {
					return fmt.Errorf("failed to hash seed password: %w", err)
				}
				if _, err := tx.Exec(`INSERT INTO users (username, password, role) VALUES ($1, $2, $3)`,
					u.username, string(hash), u.role); err != nil {
					return fmt.Errorf("failed to seed user %s: %w", u.username, err)
				}
			}
			logrus.Println("seeded staff accounts")
		}

		var items int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM menu_items`).Scan(&items); err != nil {
			return fmt.Errorf("failed to count menu items: %w", err)
		}
		if items == 0 {
			demo := []struct {
				name, category, diet   string
				price, calories, stock int
			}{
				{"Spring Rolls", "Starters", "Veg", 50, 250, 30},
				{"Paneer Tikka", "Starters", "Veg", 80, 320, 25},
				{"Veg Biryani", "Main Course", "Veg", 120, 600, 20},
				{"Chicken Biryani", "Main Course", "Non-Veg", 160, 700, 15},
				{"Masala Dosa", "Main Course", "Veg", 70, 350, 40},
				{"Gulab Jamun", "Desserts", "Veg", 40, 250, 50},
				{"Ice Cream", "Desserts", "Veg", 50, 200, 60},
			}
			for _, d := range demo {
				if _, err := tx.Exec(`INSERT INTO menu_items (name, category, price, diet, calories, stock) VALUES ($1, $2, $3, $4, $5, $6)`,
					d.name, d.category, d.price, d.diet, d.calories, d.stock); err != nil {
					return fmt.Errorf("failed to seed menu item %s: %w", d.name, err)
				}
			}
			logrus.Println("seeded demo menu")
		}
		return nil
	})
}
