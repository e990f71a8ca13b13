// Package versionproto описывает HTTP-протокол сервиса версий анкеты: пути и тела ответов.
package versionproto

import "encoding/json"

// Пути HTTP API.
const (
	PathHealth        = "/health"
	PathLatestVersion = "/api/latest-version"
	PathSaveVersion   = "/api/save-version"
	PathSubmit        = "/api/submit"
	PathReset         = "/api/reset"
	PathMetrics       = "/metrics"
	PathAdminGC       = "/admin/gc"
)

// LastModifiedLayout: ISO 8601 в локальном времени без зоны, с микросекундами.
const LastModifiedLayout = "2006-01-02T15:04:05.000000"

// LatestResponse: ответ GET /api/latest-version.
type LatestResponse struct {
	Exists       bool            `json:"exists"`
	VersionFile  string          `json:"version_file,omitempty"`
	Data         json.RawMessage `json:"data,omitempty"`
	LastModified string          `json:"last_modified,omitempty"`
}

// SaveResponse: ответ POST /api/save-version.
type SaveResponse struct {
	Saved bool   `json:"saved"`
	File  string `json:"file"`
}

// SubmitResponse: ответ POST /api/submit.
type SubmitResponse struct {
	Status  string `json:"status"`
	Version int    `json:"version"`
}

// ResetResponse: ответ POST /api/reset.
type ResetResponse struct {
	Reset bool `json:"reset"`
}

// HealthResponse: ответ GET /health.
type HealthResponse struct {
	Status           string `json:"status"`
	FrontendExists   bool   `json:"frontend_exists"`
	VersionsWritable bool   `json:"versions_writable"`
}

// ErrorResponse: тело ответа при ошибке API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// FrontendMissingResponse отдаётся на / при отсутствии каталога фронтенда.
type FrontendMissingResponse struct {
	Error        string `json:"error"`
	FrontendPath string `json:"frontend_path"`
}

const StatusSuccess = "success"
