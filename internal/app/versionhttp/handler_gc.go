package versionhttp

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sir_venger/questionnaire/internal/usecase/versionsvc"
)

// gcOnce вручную запускает очистку брошенных временных файлов.
func (a *Server) gcOnce(w http.ResponseWriter, r *http.Request) {
	if _, err := a.svc.Sweep(r.Context()); err != nil {
		a.log.Error("/admin/gc failed", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}

// StartGC стартует периодическую очистку каталога версий и возвращает функцию остановки.
func StartGC(svc versionsvc.Service, every time.Duration, log *zap.Logger) func() {
	if every <= 0 {
		return func() {}
	}
	if log == nil {
		log = zap.NewNop()
	}

	ticker := time.NewTicker(every)
	stop := make(chan struct{})
	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer close(done)
		for {
			select {
			case <-ticker.C:
				if _, err := svc.Sweep(context.Background()); err != nil {
					log.Warn("gc sweep failed", zap.Error(err))
				}
			case <-stop:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(stop)
			<-done
		})
	}
}
