package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a tree node, draft or file version was not found
	NotFoundError struct {
		Resource string
		ID       string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return e.Resource + " " + e.ID + " not found"
}

func (e *ValidationError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match against ErrNotFound
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Is allows errors.Is() to match against ErrValidation
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
)

// NewNotFound builds a NotFoundError for the given resource kind and id.
func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError represents a resource conflict with details about the existing resource
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (node, chapter, file)
	ResourceID   string // ID of the existing/conflicting resource
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
