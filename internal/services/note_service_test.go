package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/game-journal-api/internal/models"
	"github.com/yukikurage/game-journal-api/internal/repository"
	"github.com/yukikurage/game-journal-api/internal/storage"
	"go.uber.org/zap"
)

func newNoteService(t *testing.T, repo repository.NoteRepository) (*NoteService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir, "/uploads")
	require.NoError(t, err)
	return NewNoteService(repo, store, zap.NewNop()), dir
}

func TestNoteService_CreateListUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newNoteService(t, repository.NewNoteRepository(db))
	alice := createUser(t, db, "alice")
	packet := createPacket(t, db, alice.ID, "Hollow Knight")

	first, err := svc.Create(CreateNoteInput{GamePacketID: packet.ID, Text: "Beat Hornet"})
	require.NoError(t, err)
	assert.Nil(t, first.FilePath)

	second, err := svc.Create(CreateNoteInput{GamePacketID: packet.ID, Text: "Found Grimm"})
	require.NoError(t, err)

	notes, err := svc.List(packet.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, second.ID, notes[0].ID)

	updated, err := svc.Update(first.ID, "Beat Hornet twice")
	require.NoError(t, err)
	assert.Equal(t, "Beat Hornet twice", updated.NoteText)
	assert.False(t, updated.UpdatedAt.Before(first.UpdatedAt))

	require.NoError(t, svc.Delete(first.ID))
	notes, err = svc.List(packet.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, second.ID, notes[0].ID)
}

func TestNoteService_Validation(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newNoteService(t, repository.NewNoteRepository(db))
	alice := createUser(t, db, "alice")
	packet := createPacket(t, db, alice.ID, "Hollow Knight")

	_, err := svc.Create(CreateNoteInput{GamePacketID: packet.ID, Text: "  "})
	assert.ErrorIs(t, err, ErrNoteTextRequired)

	note, err := svc.Create(CreateNoteInput{GamePacketID: packet.ID, Text: "ok"})
	require.NoError(t, err)

	_, err = svc.Update(note.ID, "")
	assert.ErrorIs(t, err, ErrNoteTextRequired)

	_, err = svc.Update(9999, "text")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteService_CreateWithAttachment(t *testing.T) {
	db := newTestDB(t)
	svc, dir := newNoteService(t, repository.NewNoteRepository(db))
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }
	alice := createUser(t, db, "alice")
	packet := createPacket(t, db, alice.ID, "Hollow Knight")

	note, err := svc.Create(CreateNoteInput{
		GamePacketID: packet.ID,
		Text:         "map",
		Attachment:   &Attachment{Filename: "map.png", Content: strings.NewReader("png-bytes")},
	})
	require.NoError(t, err)
	require.NotNil(t, note.FilePath)
	assert.True(t, strings.HasPrefix(*note.FilePath, "/uploads/1700000000000000000-"), *note.FilePath)
	assert.True(t, strings.HasSuffix(*note.FilePath, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(*note.FilePath)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	updated, err := svc.Update(note.ID, "map v2")
	require.NoError(t, err)
	assert.Equal(t, note.FilePath, updated.FilePath)
}

type failingNoteRepo struct {
	repository.NoteRepository
}

func (failingNoteRepo) Create(*models.Note) error { return errors.New("insert failed") }

func TestNoteService_CreateRemovesAttachmentOnInsertFailure(t *testing.T) {
	svc, dir := newNoteService(t, failingNoteRepo{})

	_, err := svc.Create(CreateNoteInput{
		GamePacketID: 1,
		Text:         "map",
		Attachment:   &Attachment{Filename: "map.png", Content: strings.NewReader("png-bytes")},
	})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNoteService_GetOwned(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newNoteService(t, repository.NewNoteRepository(db))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	packet := createPacket(t, db, alice.ID, "Hollow Knight")

	note, err := svc.Create(CreateNoteInput{GamePacketID: packet.ID, Text: "secret"})
	require.NoError(t, err)

	got, err := svc.GetOwned(alice.ID, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)

	_, err = svc.GetOwned(bob.ID, note.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	_, err = svc.GetOwned(alice.ID, 9999)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}
