package versionhttp

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sir_venger/questionnaire/pkg/httperrors"
	"github.com/sir_venger/questionnaire/pkg/versionproto"
)

const detailSaveFailed = "Save failed"

// saveVersion перезаписывает черновик телом запроса.
func (a *Server) saveVersion(w http.ResponseWriter, r *http.Request) {
	payload, err := a.readPayload(w, r)
	if err != nil {
		a.fail(w, "/api/save-version", err, detailSaveFailed)
		return
	}

	file, err := a.svc.SaveDraft(r.Context(), payload)
	if err != nil {
		a.fail(w, "/api/save-version", err, detailSaveFailed)
		return
	}

	httperrors.JSON(w, http.StatusOK, versionproto.SaveResponse{Saved: true, File: file})
}

// fail логирует ошибку и отдаёт клиенту только обобщённый ответ.
func (a *Server) fail(w http.ResponseWriter, endpoint string, err error, detail string) {
	a.log.Error(endpoint+" failed", zap.Error(err))
	httperrors.Write(w, err, detail)
}
