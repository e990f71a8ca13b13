package versionsvc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sir_venger/questionnaire/internal/repo/versions"
)

const exportNameLayout = "20060102_150405"

// DirExporter копирует финальные ответы в папку загрузок пользователя.
type DirExporter struct {
	Dir         string
	FallbackDir string
}

// NewDirExporter создаёт экспортёр; fallback используется, если основной каталог отсутствует.
func NewDirExporter(dir, fallback string) *DirExporter {
	return &DirExporter{
		Dir:         strings.TrimSpace(dir),
		FallbackDir: strings.TrimSpace(fallback),
	}
}

// ExportName возвращает имя файла вида questionnaire_response_YYYYMMDD_HHMMSS.json.
func ExportName(at time.Time) string {
	return "questionnaire_response_" + at.Format(exportNameLayout) + ".json"
}

// Export пишет отформатированный payload в каталог экспорта и возвращает путь к файлу.
func (e *DirExporter) Export(ctx context.Context, payload []byte, at time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := e.targetDir()
	if err != nil {
		return "", err
	}

	body, err := versions.Pretty(payload)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, ExportName(at))
	if err = os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	return path, nil
}

func (e *DirExporter) targetDir() (string, error) {
	if e.Dir != "" {
		if fi, err := os.Stat(e.Dir); err == nil && fi.IsDir() {
			return e.Dir, nil
		}
	}

	if e.FallbackDir == "" {
		return "", errors.New("export dir is missing and no fallback configured")
	}
	if err := os.MkdirAll(e.FallbackDir, 0o755); err != nil {
		return "", fmt.Errorf("create export fallback dir: %w", err)
	}

	return e.FallbackDir, nil
}
