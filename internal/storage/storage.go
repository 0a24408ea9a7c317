// Package storage persists note attachments and returns the path recorded on the note.
package storage

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrForeignPath is returned when asked to remove a path the store did not produce.
var ErrForeignPath = errors.New("path does not belong to this store")

// Store saves attachment bytes under an opaque name.
type Store interface {
	// Save writes content under name and returns the access path to record.
	Save(name string, content io.Reader) (string, error)

	// Remove deletes a previously saved object by its access path.
	Remove(path string) error
}

// ObjectName builds a collision-resistant name from the upload time, a random
// suffix and the original extension. The original base name is discarded.
func ObjectName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	if len(ext) > 16 || strings.ContainsAny(ext, `/\ `) {
		ext = ""
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", now.UnixNano(), suffix, ext)
}
