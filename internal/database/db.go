// internal/database/db.go
package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"discord-calendar-bot/internal/models"
)

type DB struct {
	*gorm.DB
}

// New connects to the production Postgres database and migrates the
// calendar schema.
func New(host, user, password, dbname string, port int) (*DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		host, user, password, dbname, port)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return migrate(gormDB)
}

// NewMemory opens an in-memory SQLite database with the same schema. Used
// by tests; also what the bot originally ran on.
func NewMemory() (*DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return migrate(gormDB)
}

func migrate(gormDB *gorm.DB) (*DB, error) {
	if err := gormDB.AutoMigrate(
		&models.Event{},
		&models.GuildSettings{},
	); err != nil {
		return nil, err
	}
	return &DB{gormDB}, nil
}
