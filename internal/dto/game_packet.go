package dto

import (
	"time"

	"github.com/yukikurage/game-journal-api/internal/models"
)

// GamePacketDTO represents a game packet in API responses
type GamePacketDTO struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"user_id"`
	Title      string    `json:"title"`
	SteamAppID *int64    `json:"steam_app_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToGamePacketDTO converts a GamePacket model to GamePacketDTO
func ToGamePacketDTO(packet models.GamePacket) GamePacketDTO {
	return GamePacketDTO{
		ID:         packet.ID,
		UserID:     packet.UserID,
		Title:      packet.Title,
		SteamAppID: packet.SteamAppID,
		CreatedAt:  packet.CreatedAt,
	}
}

// ToGamePacketDTOs converts a slice, never returning nil so lists encode as []
func ToGamePacketDTOs(packets []models.GamePacket) []GamePacketDTO {
	result := make([]GamePacketDTO, 0, len(packets))
	for _, p := range packets {
		result = append(result, ToGamePacketDTO(p))
	}
	return result
}
