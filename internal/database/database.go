package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"skybook/internal/domain"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to SQLite
// (CGO-free driver) for local development and tests. TranslateError is on
// so unique-key violations surface as gorm.ErrDuplicatedKey on both.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate applies the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Airport{},
		&domain.Terminal{},
		&domain.Airline{},
		&domain.Promotion{},
		&domain.Flight{},
		&domain.Seat{},
		&domain.Booking{},
		&domain.Passenger{},
		&domain.Notification{},
	)
}
