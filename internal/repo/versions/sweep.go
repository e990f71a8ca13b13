package versions

import (
	"os"
	"time"
)

// Sweep удаляет брошенные временные файлы старше ttl и возвращает их количество.
func (s *Store) Sweep(ttl time.Duration) (int, error) {
	now := time.Now()
	items, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, it := range items {
		if it.IsDir() || !isTmpName(it.Name()) {
			continue
		}

		fi, err := it.Info()
		if err != nil {
			continue
		}
		if now.Sub(fi.ModTime()) < ttl {
			continue
		}

		if err = os.Remove(s.path(it.Name())); err == nil {
			removed++
		}
	}

	return removed, nil
}
