package dto

import (
	"github.com/yukikurage/game-journal-api/internal/auth"
	"github.com/yukikurage/game-journal-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// IdentityDTO converts the identity carried by a session token
func IdentityDTO(identity auth.Identity) UserDTO {
	return UserDTO{
		ID:       identity.ID,
		Username: identity.Username,
		Email:    identity.Email,
	}
}

// ToIdentity builds the token payload for a user
func ToIdentity(user models.User) auth.Identity {
	return auth.Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
