package versionhttp

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/sir_venger/questionnaire/pkg/httperrors"
	"github.com/sir_venger/questionnaire/pkg/versionproto"
)

const indexFile = "index.html"

// staticHandler раздаёт файлы фронтенда. Каталоги отдают свой index.html,
// неизвестные пути откатываются на корневой index.html (single-page app).
func (a *Server) staticHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		// path.Clean с ведущим "/" не даёт выйти за пределы каталога через "..".
		rel := filepath.FromSlash(path.Clean("/" + r.URL.Path))
		target := filepath.Join(a.frontendDir, rel)

		if fi, err := os.Stat(target); err == nil {
			if fi.IsDir() {
				target = filepath.Join(target, indexFile)
			}
			if serveFile(w, r, target) {
				return
			}
		}

		if serveFile(w, r, filepath.Join(a.frontendDir, indexFile)) {
			return
		}
		http.NotFound(w, r)
	}
}

// frontendMissing отвечает на / когда каталога фронтенда нет.
func (a *Server) frontendMissing(w http.ResponseWriter, _ *http.Request) {
	httperrors.JSON(w, http.StatusInternalServerError, versionproto.FrontendMissingResponse{
		Error:        "Frontend missing",
		FrontendPath: a.frontendDir,
	})
}

// serveFile отдаёт обычный файл и возвращает false, если его нет.
func serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		return false
	}

	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
	return true
}
