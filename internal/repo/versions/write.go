package versions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sir_venger/questionnaire/internal/models"
)

const tmpSuffix = ".tmp"

// Pretty проверяет, что payload: JSON-объект, и форматирует его с отступом в два пробела.
func Pretty(payload []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, models.ErrInvalidPayload
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidPayload, err)
	}

	return buf.Bytes(), nil
}

// writeFile пишет данные во временный файл рядом с целевым и атомарно переименовывает его.
func (s *Store) writeFile(name string, body []byte) error {
	tmp := s.path(tmpName(name))

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fileMode)
	if err != nil {
		return err
	}

	if _, err = f.Write(body); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err = os.Rename(tmp, s.path(name)); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// tmpName строит имя вида .v3.json.<uuid>.tmp; такие имена никогда не разбираются как версии.
func tmpName(name string) string {
	return "." + name + "." + uuid.NewString() + tmpSuffix
}

func isTmpName(name string) bool {
	return strings.HasPrefix(name, ".") && strings.HasSuffix(name, tmpSuffix)
}
