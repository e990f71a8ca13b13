package versionsvc

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/sir_venger/questionnaire/internal/models"
)

const (
	opLatest = "latest"
	opSave   = "save"
	opSubmit = "submit"
	opReset  = "reset"
	opSweep  = "sweep"
)

// Latest возвращает версию с максимальным номером.
func (s *Versions) Latest(_ context.Context) (models.Version, error) {
	v, err := s.Store.Latest()
	switch {
	case err == nil:
		s.Metrics.ObserveOp(opLatest, "ok")
		if !v.IsDraft() {
			s.Metrics.SetLatest(v.Number)
		}
	case errors.Is(err, models.ErrNotFound):
		s.Metrics.ObserveOp(opLatest, "empty")
	default:
		s.Metrics.ObserveOp(opLatest, "error")
	}

	return v, err
}

// SaveDraft перезаписывает черновик.
func (s *Versions) SaveDraft(_ context.Context, payload []byte) (string, error) {
	file, err := s.Store.SaveDraft(payload)
	if err != nil {
		s.Metrics.ObserveOp(opSave, resultOf(err))
		return "", err
	}

	s.Metrics.ObserveOp(opSave, "ok")
	s.Logger.Debug("draft saved", zap.String("file", file), zap.Int("bytes", len(payload)))

	return file, nil
}

// Reset удаляет черновик.
func (s *Versions) Reset(_ context.Context) error {
	if err := s.Store.Reset(); err != nil {
		s.Metrics.ObserveOp(opReset, "error")
		return err
	}

	s.Metrics.ObserveOp(opReset, "ok")
	s.Logger.Debug("draft reset")

	return nil
}

// Sweep однократно чистит брошенные временные файлы. Неположительный GCTTL отключает очистку.
func (s *Versions) Sweep(_ context.Context) (int, error) {
	if s.GCTTL <= 0 {
		return 0, nil
	}

	n, err := s.Store.Sweep(s.GCTTL)
	if err != nil {
		s.Metrics.ObserveOp(opSweep, "error")
		return 0, err
	}

	s.Metrics.ObserveOp(opSweep, "ok")
	if n > 0 {
		s.Logger.Info("stale temp files removed", zap.Int("count", n))
	}

	return n, nil
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, models.ErrNoDraft):
		return "no_draft"
	case errors.Is(err, models.ErrInvalidPayload):
		return "invalid"
	default:
		return "error"
	}
}
