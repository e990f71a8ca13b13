package versionhttp

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sir_venger/questionnaire/internal/models"
	"github.com/sir_venger/questionnaire/pkg/httperrors"
	"github.com/sir_venger/questionnaire/pkg/versionproto"
)

// latestVersion отдаёт последнюю версию; любая ошибка чтения превращается в {"exists": false}.
func (a *Server) latestVersion(w http.ResponseWriter, r *http.Request) {
	v, err := a.svc.Latest(r.Context())
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			a.log.Error("/api/latest-version failed", zap.Error(err))
		}
		httperrors.JSON(w, http.StatusOK, versionproto.LatestResponse{Exists: false})
		return
	}

	httperrors.JSON(w, http.StatusOK, versionproto.LatestResponse{
		Exists:       true,
		VersionFile:  v.File,
		Data:         v.Data,
		LastModified: v.LastModified.Local().Format(versionproto.LastModifiedLayout),
	})
}
