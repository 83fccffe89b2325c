package client

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport - API недоступен или ответил не 2xx
	ErrTransport = errors.New("records API request failed")
	ErrNotLoaded = errors.New("record not found in loaded list")
)

// StatusError - ответ API с кодом вне 2xx
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ошибка сервера: статус %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("ошибка сервера: статус %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrTransport
}
