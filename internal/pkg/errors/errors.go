package errors

import (
	"fmt"
)

type AppError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors,omitempty"`
	StatusCode int      `json:"-"`

	cause error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap - исходная ошибка хранилища или библиотеки
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is - сравнение по коду, чтобы копии sentinel-ошибок совпадали с оригиналом
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.StatusCode == t.StatusCode
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) clone() *AppError {
	c := *e
	if e.Errors != nil {
		c.Errors = append([]string(nil), e.Errors...)
	}
	return &c
}

// WithMessage - копия ошибки с другим сообщением
func (e *AppError) WithMessage(message string) *AppError {
	c := e.clone()
	c.Message = message
	return c
}

// WithErrors - копия ошибки со списком ошибок валидации
func (e *AppError) WithErrors(errs []string) *AppError {
	c := e.clone()
	c.Errors = errs
	return c
}

// WithCause - копия ошибки с причиной; причина не сериализуется в ответ
func (e *AppError) WithCause(err error) *AppError {
	c := e.clone()
	c.cause = err
	return c
}
