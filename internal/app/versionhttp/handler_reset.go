package versionhttp

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sir_venger/questionnaire/pkg/httperrors"
	"github.com/sir_venger/questionnaire/pkg/versionproto"
)

// reset удаляет черновик. Ошибка отдаётся как {"reset": false}, а не как 5xx.
func (a *Server) reset(w http.ResponseWriter, r *http.Request) {
	if err := a.svc.Reset(r.Context()); err != nil {
		a.log.Error("/api/reset failed", zap.Error(err))
		httperrors.JSON(w, http.StatusOK, versionproto.ResetResponse{Reset: false})
		return
	}

	httperrors.JSON(w, http.StatusOK, versionproto.ResetResponse{Reset: true})
}
