package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest   = errors.New("invalid order data")
	ErrDataNotFound     = errors.New("data not found")
	ErrOrderAlreadyPaid = errors.New("order is already paid")
	ErrConflictData     = errors.New("data conflicts with existing data")
	ErrInternalError    = errors.New("internal error")
)

// UpstreamError is returned when the provider or payment gateway reports
// failure or the call itself fails.
type UpstreamError struct {
	Msg string
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("upstream error: %s", e.Msg)
}

// NewUpstreamError creates UpstreamError with message
func NewUpstreamError(msg string) UpstreamError {
	return UpstreamError{Msg: msg}
}
