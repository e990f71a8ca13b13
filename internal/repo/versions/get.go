package versions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sir_venger/questionnaire/internal/models"
)

// Latest возвращает содержимое файла версии с максимальным номером.
// Черновик v0.json участвует в выборе наравне с финальными версиями.
func (s *Store) Latest() (models.Version, error) {
	entries, err := s.scan()
	if err != nil {
		return models.Version{}, err
	}
	if len(entries) == 0 {
		return models.Version{}, models.ErrNotFound
	}

	return s.read(entries[0])
}

// DraftExists сообщает, есть ли на диске v0.json.
func (s *Store) DraftExists() (bool, error) {
	_, err := os.Stat(s.path(draftFile))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("stat draft: %w", err)
}

func (s *Store) read(e entry) (models.Version, error) {
	p := s.path(e.name)
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Version{}, models.ErrNotFound
		}
		return models.Version{}, fmt.Errorf("read %s: %w", e.name, err)
	}

	// Храним JSON как есть, но убеждаемся, что он валиден.
	if !json.Valid(b) {
		return models.Version{}, fmt.Errorf("parse %s: invalid JSON", e.name)
	}

	fi, err := os.Stat(p)
	if err != nil {
		return models.Version{}, fmt.Errorf("stat %s: %w", e.name, err)
	}

	return models.Version{
		Number:       e.number,
		File:         e.name,
		Data:         json.RawMessage(b),
		LastModified: fi.ModTime(),
	}, nil
}
