package models

import "errors"

var (
	ErrNotFound       = errors.New("version not found")
	ErrNoDraft        = errors.New("no draft to submit")
	ErrInvalidPayload = errors.New("payload must be a JSON object")
)
