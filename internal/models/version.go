package models

import (
	"encoding/json"
	"time"
)

// DraftNumber: номер черновика; финальные версии нумеруются начиная с 1.
const DraftNumber = 0

// Version описывает один файл v<N>.json из каталога версий.
type Version struct {
	Number       int
	File         string
	Data         json.RawMessage
	LastModified time.Time
}

// IsDraft сообщает, является ли версия черновиком v0.json.
func (v Version) IsDraft() bool {
	return v.Number == DraftNumber
}

// SubmitResult возвращается после финализации черновика.
type SubmitResult struct {
	Version int
	File    string
}
