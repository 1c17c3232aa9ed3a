package database

import (
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/models"
)

// Migrate brings the schema up to date. The SQL files under migrations/ are
// the source of truth for production; auto-migration keeps dev and test
// databases in sync without the migrate tool.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
	)
}
