package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/game-journal-api/internal/config"
	"github.com/yukikurage/game-journal-api/internal/database"
	"github.com/yukikurage/game-journal-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(&config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseURL: "file::memory:",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPacket(t *testing.T, db *gorm.DB, userID uint64, title string) *models.GamePacket {
	t.Helper()
	packet := &models.GamePacket{UserID: userID, Title: title}
	require.NoError(t, db.Create(packet).Error)
	return packet
}
