package versionhttp

import (
	"io"
	"net/http"
)

// readPayload читает тело запроса целиком с ограничением по размеру.
// Проверка на JSON-объект выполняется в хранилище.
func (a *Server) readPayload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := http.MaxBytesReader(w, r.Body, a.maxBodyBytes)
	defer body.Close()

	return io.ReadAll(body)
}
