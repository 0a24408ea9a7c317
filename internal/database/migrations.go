package database

import (
	"fmt"

	"github.com/yukikurage/game-journal-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the users, game_packets and notes tables.
// Order matters: each table references the previous one.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.GamePacket{},
		&models.Note{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
