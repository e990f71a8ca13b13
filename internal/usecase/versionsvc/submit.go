package versionsvc

import (
	"context"

	"go.uber.org/zap"

	"github.com/sir_venger/questionnaire/internal/models"
)

// Submit финализирует черновик и, если настроен экспорт, сохраняет копию ответа.
// Ошибка экспорта только логируется: версия уже записана.
func (s *Versions) Submit(ctx context.Context, payload []byte) (models.SubmitResult, error) {
	res, err := s.Store.Submit(payload)
	if err != nil {
		s.Metrics.ObserveOp(opSubmit, resultOf(err))
		return models.SubmitResult{}, err
	}

	s.Metrics.ObserveOp(opSubmit, "ok")
	s.Metrics.SetLatest(res.Version)
	s.Logger.Info("version submitted", zap.Int("version", res.Version), zap.String("file", res.File))

	if s.Exporter != nil {
		path, expErr := s.Exporter.Export(ctx, payload, s.Now())
		if expErr != nil {
			s.Logger.Warn("export failed", zap.Int("version", res.Version), zap.Error(expErr))
		} else {
			s.Logger.Info("version exported", zap.Int("version", res.Version), zap.String("path", path))
		}
	}

	return res, nil
}
