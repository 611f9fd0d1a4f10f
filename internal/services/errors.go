package services

import "errors"

var (
	// ErrNotFound is returned when the referenced record does not exist (or, for updates, nothing changed)
	ErrNotFound = errors.New("record not found")
)
