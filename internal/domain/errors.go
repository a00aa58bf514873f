package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTopicNotFound   = errors.New("topic not found")
	ErrNoActiveSession = errors.New("no active session")
)
