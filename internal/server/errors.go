// Package server provides the HTTP REST API for career-pilot.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/anand/career-pilot/internal/content"
	"github.com/anand/career-pilot/internal/cv"
)

// ErrPhoneAlreadyExists indicates the phone number is already registered
type ErrPhoneAlreadyExists struct {
	PhoneNumber string
}

func (e *ErrPhoneAlreadyExists) Error() string {
	return fmt.Sprintf("phone number already registered: %s", e.PhoneNumber)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid phone number or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrPhoneAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, content.ErrUnknownCategory):
		return http.StatusNotFound
	case errors.Is(err, content.ErrProfileNotReady):
		return http.StatusConflict
	}

	var parseErr *content.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadGateway
	}
	var compileErr *cv.CompileError
	if errors.As(err, &compileErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
