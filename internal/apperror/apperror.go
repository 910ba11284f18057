// Package apperror описывает классы ошибок, которые слой HTTP превращает в коды ответа.
package apperror

import (
	"errors"
	"fmt"
)

// Kind - класс ошибки
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
	KindPersistence
	KindDependency
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence"
	case KindDependency:
		return "dependency"
	default:
		return "internal"
	}
}

// Error - ошибка приложения с классом и сообщением для клиента
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New создает ошибку заданного класса
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation - ошибка входных данных
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound - сущность не найдена
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Persistence оборачивает сбой хранилища
func Persistence(op string, err error) error {
	return &Error{Kind: KindPersistence, Message: op, Err: err}
}

// Dependency оборачивает сбой внешней зависимости (очередь, объектное хранилище)
func Dependency(op string, err error) error {
	return &Error{Kind: KindDependency, Message: op, Err: err}
}

// KindOf возвращает класс первой *Error в цепочке или KindInternal
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf возвращает сообщение для клиента
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
