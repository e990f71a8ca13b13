package versionhttp

import (
	"net/http"
	"os"

	"github.com/sir_venger/questionnaire/pkg/httperrors"
	"github.com/sir_venger/questionnaire/pkg/versionproto"
)

// health сообщает, на месте ли каталоги фронтенда и версий.
// Наличие каталога версий считается признаком доступности на запись, реальная запись не проверяется.
func (a *Server) health(w http.ResponseWriter, _ *http.Request) {
	httperrors.JSON(w, http.StatusOK, versionproto.HealthResponse{
		Status:           "ok",
		FrontendExists:   dirExists(a.frontendDir),
		VersionsWritable: a.svc.StoreReady(),
	})
}

func dirExists(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
