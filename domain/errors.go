package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidQuestionIndex = errors.New("invalid survey question index")
	ErrInvalidToken         = errors.New("invalid session token")
)
