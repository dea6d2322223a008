package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the application. Errors produced anywhere in the
// codebase are marked with one of these so transports can map them to a
// status code and callers can branch on kind without string matching.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrDirectoryLoad    = errors.New("directory load error")
	ErrExport           = errors.New("export error")
	ErrHTTPClient       = errors.New("http client error")
	ErrSystem           = errors.New("system error")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrValidation:       http.StatusBadRequest,
		ErrNotFound:         http.StatusNotFound,
		ErrInvalidOperation: http.StatusBadRequest,
		ErrDirectoryLoad:    http.StatusServiceUnavailable,
		ErrExport:           http.StatusBadGateway,
		ErrHTTPClient:       http.StatusInternalServerError,
		ErrSystem:           http.StatusInternalServerError,
	}
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDirectoryLoad checks if an error is a directory load error
func IsDirectoryLoad(err error) bool {
	return errors.Is(err, ErrDirectoryLoad)
}

// IsExport checks if an error is an export error
func IsExport(err error) bool {
	return errors.Is(err, ErrExport)
}

// IsHTTPClient checks if an error is an http client error
func IsHTTPClient(err error) bool {
	return errors.Is(err, ErrHTTPClient)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
