package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/game-journal-api/internal/constants"
	apierrors "github.com/yukikurage/game-journal-api/internal/errors"
	"github.com/yukikurage/game-journal-api/internal/models"
	"github.com/yukikurage/game-journal-api/internal/services"
)

// GamePacketResolver loads a packet only if userID owns it.
type GamePacketResolver interface {
	GetOwned(userID, id uint64) (*models.GamePacket, error)
}

// NoteResolver loads a note only if its packet belongs to userID.
type NoteResolver interface {
	GetOwned(userID, noteID uint64) (*models.Note, error)
}

// RequireGamePacketAccess loads the packet named by the URL parameter and
// stores it in the context. Foreign packets answer 404, like missing ones.
func RequireGamePacketAccess(resolver GamePacketResolver, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid game id")
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		packet, err := resolver.GetOwned(userID, id)
		if err != nil {
			if errors.Is(err, services.ErrGamePacketNotFound) {
				apierrors.NotFound(c, "Game not found")
				return
			}
			apierrors.InternalError(c, "")
			return
		}

		c.Set(constants.ContextKeyGamePacket, *packet)
		c.Next()
	}
}

// RequireNoteAccess loads the note named by the URL parameter and stores it
// in the context. Notes of foreign packets answer 404.
func RequireNoteAccess(resolver NoteResolver, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid note id")
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		note, err := resolver.GetOwned(userID, id)
		if err != nil {
			if errors.Is(err, services.ErrNoteNotFound) {
				apierrors.NotFound(c, "Note not found")
				return
			}
			apierrors.InternalError(c, "")
			return
		}

		c.Set(constants.ContextKeyNote, *note)
		c.Next()
	}
}

// GetGamePacket retrieves the packet stored by RequireGamePacketAccess
func GetGamePacket(c *gin.Context) (models.GamePacket, bool) {
	value, exists := c.Get(constants.ContextKeyGamePacket)
	if !exists {
		return models.GamePacket{}, false
	}
	packet, ok := value.(models.GamePacket)
	return packet, ok
}

// GetNote retrieves the note stored by RequireNoteAccess
func GetNote(c *gin.Context) (models.Note, bool) {
	value, exists := c.Get(constants.ContextKeyNote)
	if !exists {
		return models.Note{}, false
	}
	note, ok := value.(models.Note)
	return note, ok
}
