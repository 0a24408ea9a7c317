package repository

import (
	"github.com/yukikurage/game-journal-api/internal/models"
	"gorm.io/gorm"
)

// GormGamePacketRepository is a GORM implementation of GamePacketRepository
type GormGamePacketRepository struct {
	db *gorm.DB
}

// NewGamePacketRepository creates a new GamePacketRepository
func NewGamePacketRepository(db *gorm.DB) GamePacketRepository {
	return &GormGamePacketRepository{db: db}
}

// Create creates a new game packet
func (r *GormGamePacketRepository) Create(packet *models.GamePacket) error {
	return r.db.Create(packet).Error
}

// FindByID finds a game packet by ID
func (r *GormGamePacketRepository) FindByID(id uint64) (*models.GamePacket, error) {
	var packet models.GamePacket
	if err := r.db.First(&packet, id).Error; err != nil {
		return nil, err
	}
	return &packet, nil
}

// ListByUser lists a user's game packets, newest first
func (r *GormGamePacketRepository) ListByUser(userID uint64) ([]models.GamePacket, error) {
	packets := []models.GamePacket{}
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&packets).Error
	if err != nil {
		return nil, err
	}
	return packets, nil
}

// ListSteamAppIDs returns the steam app ids attached to the user's packets
func (r *GormGamePacketRepository) ListSteamAppIDs(userID uint64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&models.GamePacket{}).
		Where("user_id = ? AND steam_app_id IS NOT NULL", userID).
		Pluck("steam_app_id", &ids).Error
	return ids, err
}

// DeleteOwned deletes a game packet matching both id and owner
func (r *GormGamePacketRepository) DeleteOwned(id, userID uint64) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.GamePacket{})
	return result.RowsAffected, result.Error
}
