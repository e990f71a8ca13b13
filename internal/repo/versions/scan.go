package versions

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sir_venger/questionnaire/internal/models"
)

const (
	filePrefix = "v"
	fileExt    = ".json"
	draftFile  = "v0.json"
)

// entry: найденный на диске файл версии.
type entry struct {
	number int
	name   string
}

// FileName возвращает имя файла для версии с номером n.
func FileName(n int) string {
	return fmt.Sprintf("%s%d%s", filePrefix, n, fileExt)
}

// ParseFileName извлекает номер версии из имени вида v<N>.json.
// Имена с нецелым или отрицательным суффиксом не являются версиями.
func ParseFileName(name string) (int, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt)
	if digits == "" {
		return 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// scan перечисляет файлы версий каталога, отсортированные по убыванию номера.
// При совпадении номеров (v1.json и v01.json) раньше идёт меньшее по алфавиту имя.
func (s *Store) scan() ([]entry, error) {
	items, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read versions dir: %w", err)
	}

	out := make([]entry, 0, len(items))
	for _, it := range items {
		if it.IsDir() {
			continue
		}
		n, ok := ParseFileName(it.Name())
		if !ok {
			continue
		}
		out = append(out, entry{number: n, name: it.Name()})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].number != out[j].number {
			return out[i].number > out[j].number
		}
		return out[i].name < out[j].name
	})

	return out, nil
}

// nextVersion вычисляет номер следующей финальной версии: 1 + максимум по N != 0.
func (s *Store) nextVersion() (int, error) {
	entries, err := s.scan()
	if err != nil {
		return 0, err
	}

	for _, e := range entries {
		if e.number == models.DraftNumber {
			continue
		}
		if e.number == math.MaxInt {
			return 0, fmt.Errorf("version counter exhausted at %s", e.name)
		}
		return e.number + 1, nil
	}

	return 1, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
