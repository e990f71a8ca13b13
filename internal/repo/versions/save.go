package versions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sir_venger/questionnaire/internal/models"
)

// SaveDraft безусловно перезаписывает v0.json переданным JSON-объектом.
func (s *Store) SaveDraft(payload []byte) (string, error) {
	body, err := Pretty(payload)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.writeFile(draftFile, body); err != nil {
		return "", fmt.Errorf("write draft: %w", err)
	}

	return draftFile, nil
}

// Submit финализирует черновик: пишет payload в v<max+1>.json и удаляет v0.json.
// Содержимое черновика не перечитывается, в новую версию попадает именно payload.
func (s *Store) Submit(payload []byte) (models.SubmitResult, error) {
	body, err := Pretty(payload)
	if err != nil {
		return models.SubmitResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.DraftExists()
	if err != nil {
		return models.SubmitResult{}, err
	}
	if !ok {
		return models.SubmitResult{}, models.ErrNoDraft
	}

	next, err := s.nextVersion()
	if err != nil {
		return models.SubmitResult{}, err
	}

	name := FileName(next)
	if err = s.writeFile(name, body); err != nil {
		return models.SubmitResult{}, fmt.Errorf("write %s: %w", name, err)
	}

	if err = s.removeDraft(); err != nil {
		return models.SubmitResult{}, err
	}

	return models.SubmitResult{Version: next, File: name}, nil
}

// Reset удаляет черновик; отсутствие v0.json ошибкой не считается.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeDraft()
}

func (s *Store) removeDraft() error {
	err := os.Remove(s.path(draftFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove draft: %w", err)
	}

	return nil
}
