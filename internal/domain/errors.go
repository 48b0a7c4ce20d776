package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionCorrupt  = errors.New("session data corrupt")
	ErrGateway         = errors.New("completion gateway failure")
	ErrEmptyMessage    = errors.New("empty message")
)
