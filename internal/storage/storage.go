// Package storage persists finished pages to the local filesystem.
package storage

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/tembo-pages/tembo/internal/errors"
	"github.com/tembo-pages/tembo/internal/logging"
	"github.com/tembo-pages/tembo/internal/models"
)

// Storage writes pages to disk.
type Storage struct {
	log zerolog.Logger
}

// New creates a storage instance.
func New() *Storage {
	return &Storage{log: logging.GetLogger("storage")}
}

// SavePage writes the page content to its path exactly once. Missing parent
// directories are created; an existing file at the path is never overwritten.
// The existence check is a pre-check, not an exclusive create, so a racing
// writer between check and write can still win.
func (s *Storage) SavePage(page models.Page) (models.Success, error) {
	dir := filepath.Dir(page.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return models.Success{}, errors.Wrap(err, errors.CodeStorageFailure,
			"failed to create directory "+dir)
	}

	if _, err := os.Stat(page.Path); err == nil {
		return models.Success{}, errors.PageExists(page.Path)
	}

	if err := os.WriteFile(page.Path, []byte(page.Content), 0644); err != nil {
		return models.Success{}, errors.Wrap(err, errors.CodeStorageFailure,
			"failed to write page "+page.Path)
	}

	s.log.Debug().Str("path", page.Path).Int("bytes", len(page.Content)).Msg("page saved")
	return models.Success{Message: page.Path}, nil
}
