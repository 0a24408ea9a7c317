package repository

import (
	"github.com/yukikurage/game-journal-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// ExistsByUsernameOrEmail reports whether either value is already taken
	ExistsByUsernameOrEmail(username, email string) (bool, error)
}

// GamePacketRepository defines the interface for game packet data access
type GamePacketRepository interface {
	// Create creates a new game packet
	Create(packet *models.GamePacket) error

	// FindByID finds a game packet by ID regardless of owner
	FindByID(id uint64) (*models.GamePacket, error)

	// ListByUser lists the user's packets, newest first
	ListByUser(userID uint64) ([]models.GamePacket, error)

	// ListSteamAppIDs returns the non-null steam app ids the user tracks
	ListSteamAppIDs(userID uint64) ([]int64, error)

	// DeleteOwned deletes the packet only when it belongs to userID.
	// Notes are removed by the foreign key cascade.
	DeleteOwned(id, userID uint64) (int64, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// Create creates a new note
	Create(note *models.Note) error

	// FindByID finds a note by ID with its parent game packet loaded
	FindByID(id uint64) (*models.Note, error)

	// ListByGamePacket lists the notes of a packet, newest first
	ListByGamePacket(gamePacketID uint64) ([]models.Note, error)

	// UpdateText replaces the note text and bumps updated_at
	UpdateText(id uint64, text string) error

	// Delete deletes a note by ID
	Delete(id uint64) error
}
