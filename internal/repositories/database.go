package repositories

import (
	"fmt"

	"backoffice/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDatabase connects to the database selected by driver ("sqlite" or "postgres")
// and migrates the schema.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables backing the models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Account{}, &models.Product{}, &models.Order{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
