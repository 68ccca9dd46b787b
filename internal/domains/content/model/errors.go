package model

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInvalidPayload = errors.New("invalid import payload")
)

// PayloadError: body import không đúng dạng { <plural>: [...] }
type PayloadError struct {
	Msg string
}

func (e *PayloadError) Error() string { return e.Msg }

func (e *PayloadError) Is(target error) bool { return target == ErrInvalidPayload }

func NewPayloadError(format string, args ...any) *PayloadError {
	return &PayloadError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationError bọc ValidationResult của create/update
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string { return e.Result.Message() }

// StoreError: database từ chối thao tác (constraint, connectivity...)
type StoreError struct {
	Op  string
	Err error
}

// Error trả về message gốc của store; PgError chỉ lấy phần Message
func (e *StoreError) Error() string {
	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) {
		return pgErr.Message
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// WrapStore bọc lỗi repository thành StoreError, giữ nguyên ErrNotFound
func WrapStore(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var ve *ValidationError
	switch {
	case errors.Is(err, ErrInvalidPayload), errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var ve *ValidationError
	var se *StoreError
	switch {
	case errors.Is(err, ErrInvalidPayload):
		return "INVALID_PAYLOAD"
	case errors.As(err, &ve):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.As(err, &se):
		return "STORE_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}
