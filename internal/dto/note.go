package dto

import (
	"time"

	"github.com/yukikurage/game-journal-api/internal/models"
)

// NoteDTO represents a note in API responses
type NoteDTO struct {
	ID           uint64    `json:"id"`
	GamePacketID uint64    `json:"game_packet_id"`
	NoteText     string    `json:"note_text"`
	FilePath     *string   `json:"file_path"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToNoteDTO(note models.Note) NoteDTO {
	return NoteDTO{
		ID:           note.ID,
		GamePacketID: note.GamePacketID,
		NoteText:     note.NoteText,
		FilePath:     note.FilePath,
		CreatedAt:    note.CreatedAt,
		UpdatedAt:    note.UpdatedAt,
	}
}

func ToNoteDTOs(notes []models.Note) []NoteDTO {
	result := make([]NoteDTO, 0, len(notes))
	for _, n := range notes {
		result = append(result, ToNoteDTO(n))
	}
	return result
}
