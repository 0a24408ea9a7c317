package repository

import (
	"github.com/yukikurage/game-journal-api/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// Create creates a new note
func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// FindByID finds a note by ID and preloads its game packet
func (r *GormNoteRepository) FindByID(id uint64) (*models.Note, error) {
	var note models.Note
	if err := r.db.Preload("GamePacket").First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByGamePacket lists notes for a game packet, newest first
func (r *GormNoteRepository) ListByGamePacket(gamePacketID uint64) ([]models.Note, error) {
	notes := []models.Note{}
	err := r.db.Where("game_packet_id = ?", gamePacketID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateText replaces the note text; GORM bumps updated_at
func (r *GormNoteRepository) UpdateText(id uint64, text string) error {
	result := r.db.Model(&models.Note{ID: id}).Update("note_text", text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a note by ID
func (r *GormNoteRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Note{}, id).Error
}
