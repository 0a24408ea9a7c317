package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/game-journal-api/internal/dto"
	apierrors "github.com/yukikurage/game-journal-api/internal/errors"
	"github.com/yukikurage/game-journal-api/internal/middleware"
	"github.com/yukikurage/game-journal-api/internal/services"
)

// NoteHandler serves notes. Every route runs behind an access middleware, so
// the packet or note in the context already belongs to the caller.
type NoteHandler struct {
	noteService *services.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// List returns the notes of the packet, newest first
func (h *NoteHandler) List(c *gin.Context) {
	packet, ok := middleware.GetGamePacket(c)
	if !ok {
		apierrors.NotFound(c, "Game not found")
		return
	}

	notes, err := h.noteService.List(packet.ID)
	if err != nil {
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to fetch notes")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTOs(notes))
}

// Create reads a multipart form with noteText and an optional file
func (h *NoteHandler) Create(c *gin.Context) {
	packet, ok := middleware.GetGamePacket(c)
	if !ok {
		apierrors.NotFound(c, "Game not found")
		return
	}

	input := services.CreateNoteInput{
		GamePacketID: packet.ID,
		Text:         c.PostForm("noteText"),
	}

	fileHeader, err := c.FormFile("file")
	switch {
	case err == nil:
		file, err := fileHeader.Open()
		if err != nil {
			apierrors.BadRequest(c, "Invalid file upload")
			return
		}
		defer file.Close()
		input.Attachment = &services.Attachment{Filename: fileHeader.Filename, Content: file}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		apierrors.BadRequest(c, "Invalid file upload")
		return
	}

	note, err := h.noteService.Create(input)
	if err != nil {
		if errors.Is(err, services.ErrNoteTextRequired) {
			apierrors.BadRequest(c, "Note text is required")
			return
		}
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to create note")
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteDTO(*note))
}

// Update replaces the note text from a JSON body
func (h *NoteHandler) Update(c *gin.Context) {
	type UpdateNoteRequest struct {
		NoteText string `json:"noteText"`
	}

	note, ok := middleware.GetNote(c)
	if !ok {
		apierrors.NotFound(c, "Note not found")
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	updated, err := h.noteService.Update(note.ID, req.NoteText)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoteTextRequired):
			apierrors.BadRequest(c, "Note text is required")
		case errors.Is(err, services.ErrNoteNotFound):
			apierrors.NotFound(c, "Note not found")
		default:
			_ = c.Error(err)
			apierrors.InternalError(c, "Failed to update note")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(*updated))
}

// Delete removes the note
func (h *NoteHandler) Delete(c *gin.Context) {
	note, ok := middleware.GetNote(c)
	if !ok {
		apierrors.NotFound(c, "Note not found")
		return
	}

	if err := h.noteService.Delete(note.ID); err != nil {
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to delete note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
