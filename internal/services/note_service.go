package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yukikurage/game-journal-api/internal/models"
	"github.com/yukikurage/game-journal-api/internal/repository"
	"github.com/yukikurage/game-journal-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNoteTextRequired = errors.New("note text is required")
	ErrNoteNotFound     = errors.New("note not found")
	ErrFailedToStore    = errors.New("failed to store attachment")
)

// NoteService manages notes and their attachments.
type NoteService struct {
	repo   repository.NoteRepository
	store  storage.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewNoteService creates a NoteService storing attachments in store.
func NewNoteService(repo repository.NoteRepository, store storage.Store, logger *zap.Logger) *NoteService {
	return &NoteService{
		repo:   repo,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// List returns the notes of a packet, newest first.
func (s *NoteService) List(gamePacketID uint64) ([]models.Note, error) {
	notes, err := s.repo.ListByGamePacket(gamePacketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// Attachment is an uploaded file. Filename is only used for its extension.
type Attachment struct {
	Filename string
	Content  io.Reader
}

// CreateNoteInput holds the fields of a new note.
type CreateNoteInput struct {
	GamePacketID uint64
	Text         string
	Attachment   *Attachment
}

// Create stores the attachment, if any, then inserts the note. A stored
// attachment is removed again when the insert fails.
func (s *NoteService) Create(input CreateNoteInput) (*models.Note, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrNoteTextRequired
	}

	note := &models.Note{
		GamePacketID: input.GamePacketID,
		NoteText:     input.Text,
	}

	if input.Attachment != nil {
		name := storage.ObjectName(input.Attachment.Filename, s.now())
		path, err := s.store.Save(name, input.Attachment.Content)
		if err != nil {
			s.logger.Error("failed to store attachment", zap.String("object", name), zap.Error(err))
			return nil, ErrFailedToStore
		}
		note.FilePath = &path
	}

	if err := s.repo.Create(note); err != nil {
		if note.FilePath != nil {
			if rmErr := s.store.Remove(*note.FilePath); rmErr != nil {
				s.logger.Error("failed to remove orphaned attachment",
					zap.String("path", *note.FilePath), zap.Error(rmErr))
			}
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

// Update replaces the note text. The attachment is left untouched.
func (s *NoteService) Update(noteID uint64, text string) (*models.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoteTextRequired
	}

	if err := s.repo.UpdateText(noteID, text); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	note, err := s.repo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to reload note: %w", err)
	}
	return note, nil
}

// Delete removes a note. The attachment object is kept.
func (s *NoteService) Delete(noteID uint64) error {
	if err := s.repo.Delete(noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// GetOwned resolves a note and checks that its packet belongs to userID.
func (s *NoteService) GetOwned(userID, noteID uint64) (*models.Note, error) {
	note, err := s.repo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	if !note.GamePacket.OwnedBy(userID) {
		return nil, ErrNoteNotFound
	}
	return note, nil
}
