package versionhttp

import (
	"net/http"

	"github.com/sir_venger/questionnaire/pkg/httperrors"
	"github.com/sir_venger/questionnaire/pkg/versionproto"
)

const detailSubmitFailed = "Submit failed"

// submit финализирует черновик в новую неизменяемую версию.
func (a *Server) submit(w http.ResponseWriter, r *http.Request) {
	payload, err := a.readPayload(w, r)
	if err != nil {
		a.fail(w, "/api/submit", err, detailSubmitFailed)
		return
	}

	res, err := a.svc.Submit(r.Context(), payload)
	if err != nil {
		a.fail(w, "/api/submit", err, detailSubmitFailed)
		return
	}

	httperrors.JSON(w, http.StatusOK, versionproto.SubmitResponse{
		Status:  versionproto.StatusSuccess,
		Version: res.Version,
	})
}
