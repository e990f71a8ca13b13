package versionsvc

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sir_venger/questionnaire/internal/metrics"
	"github.com/sir_venger/questionnaire/internal/models"
)

type (
	// Store: файловое хранилище версий анкеты.
	Store interface {
		Latest() (models.Version, error)
		SaveDraft(payload []byte) (string, error)
		Submit(payload []byte) (models.SubmitResult, error)
		Reset() error
		Sweep(ttl time.Duration) (int, error)
		Exists() bool
	}

	// Exporter получает копию каждой финальной версии.
	Exporter interface {
		Export(ctx context.Context, payload []byte, at time.Time) (string, error)
	}

	// Service объединяет операции над черновиком и финальными версиями.
	Service interface {
		Latest(ctx context.Context) (models.Version, error)
		SaveDraft(ctx context.Context, payload []byte) (string, error)
		Submit(ctx context.Context, payload []byte) (models.SubmitResult, error)
		Reset(ctx context.Context) error
		Sweep(ctx context.Context) (int, error)
		StoreReady() bool
	}
)

type Deps struct {
	Store    Store
	Exporter Exporter
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
	GCTTL    time.Duration
	Now      func() time.Time
}

type Versions struct {
	Deps
}

// New конструирует сервис версий с заданными зависимостями.
func New(deps Deps) *Versions {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Versions{Deps: deps}
}

var _ Service = (*Versions)(nil)

// StoreReady: проверка каталога версий для /health.
func (s *Versions) StoreReady() bool {
	return s.Store.Exists()
}
