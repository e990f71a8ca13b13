package versions

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Store хранит черновик и финальные версии анкеты файлами v<N>.json в одном каталоге.
type Store struct {
	dir string

	// mu сериализует изменяющие операции внутри процесса.
	mu sync.Mutex
}

// Open создаёт каталог версий при необходимости и возвращает хранилище поверх него.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("versions dir is empty")
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("create versions dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Dir возвращает путь к каталогу версий.
func (s *Store) Dir() string {
	return s.dir
}

// Exists сообщает, существует ли каталог версий прямо сейчас.
func (s *Store) Exists() bool {
	fi, err := os.Stat(s.dir)
	return err == nil && fi.IsDir()
}
