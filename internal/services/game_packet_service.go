package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/game-journal-api/internal/models"
	"github.com/yukikurage/game-journal-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrGamePacketNotFound = errors.New("game not found")
)

// GamePacketService holds the game list rules of a single user.
type GamePacketService struct {
	repo repository.GamePacketRepository
}

// NewGamePacketService creates a new GamePacketService.
func NewGamePacketService(repo repository.GamePacketRepository) *GamePacketService {
	return &GamePacketService{repo: repo}
}

// List returns the user's packets, newest first.
func (s *GamePacketService) List(userID uint64) ([]models.GamePacket, error) {
	packets, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return packets, nil
}

// CreateGamePacketInput holds the fields of a new game packet.
type CreateGamePacketInput struct {
	UserID     uint64
	Title      string
	SteamAppID *int64
}

// Create adds a packet. The steam app id is stored as given.
func (s *GamePacketService) Create(input CreateGamePacketInput) (*models.GamePacket, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	packet := &models.GamePacket{
		UserID:     input.UserID,
		Title:      title,
		SteamAppID: input.SteamAppID,
	}
	if err := s.repo.Create(packet); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return packet, nil
}

// Delete removes a packet and, through the cascade, its notes.
// Missing or foreign packets are ignored.
func (s *GamePacketService) Delete(userID, id uint64) error {
	packet, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find game: %w", err)
	}
	if !packet.OwnedBy(userID) {
		return nil
	}

	if _, err := s.repo.DeleteOwned(id, userID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// GetOwned resolves a packet and checks it belongs to userID.
// Foreign packets are reported as not found.
func (s *GamePacketService) GetOwned(userID, id uint64) (*models.GamePacket, error) {
	packet, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGamePacketNotFound
		}
		return nil, fmt.Errorf("failed to find game: %w", err)
	}
	if !packet.OwnedBy(userID) {
		return nil, ErrGamePacketNotFound
	}
	return packet, nil
}

// OwnedSteamAppIDs lists the catalog ids already on the user's list.
func (s *GamePacketService) OwnedSteamAppIDs(userID uint64) ([]int64, error) {
	ids, err := s.repo.ListSteamAppIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned app ids: %w", err)
	}
	return ids, nil
}
