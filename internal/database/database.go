package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"tablebook/internal/domain"
)

// Connect opens a gorm connection. Postgres DSNs go through the pgx-backed
// driver; anything else is treated as a SQLite path (pure-Go driver, used for
// local development and tests).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// DriverName reports the database/sql driver behind a DSN. sqlx needs it to
// pick the right bindvar style.
func DriverName(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

// Migrate creates the schema, parents before children so FK constraints
// resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Role{},
		&domain.RolePermission{},
		&domain.User{},
		&domain.Restaurant{},
		&domain.OperatingHour{},
		&domain.TableLayout{},
		&domain.Reservation{},
		&domain.CustomerPreference{},
	)
}
