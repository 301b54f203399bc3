package vtsclient

import (
	"errors"
	"fmt"

	"github.com/EgorLis/govts/internal/vtsapi"
)

var (
	// ErrNotConnected — операция требует открытого соединения.
	ErrNotConnected = errors.New("not connected to VTube Studio")
	// ErrAlreadyConnected — Start на уже запущенной сессии.
	ErrAlreadyConnected = errors.New("already connected to a VTube Studio instance")
	// ErrConnectionClosed — соединение закрылось, пока запрос ждал ответа.
	ErrConnectionClosed = errors.New("connection closed")
	// ErrTimeout — ответ не пришёл в отведённый срок.
	ErrTimeout = errors.New("timeout waiting for response")
	// ErrHandlerNotFound — OffEvent для незарегистрированного обработчика.
	ErrHandlerNotFound = errors.New("event handler not found")
)

// RequestError — сервер ответил структурной ошибкой (APIError) вместо
// ожидаемого ответа. Код и текст передаются как есть.
type RequestError struct {
	Code    vtsapi.ErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("[%s](%d): %s", e.Code, int(e.Code), e.Message)
}

// AuthError — аутентификация отвергнута, включая провал повторной попытки
// со свежим токеном.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }
