package underboss

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Category classifies a failed dispatch into the closed error taxonomy used
// across the SDK. Callers branch on the category for programmatic handling
// (e.g. redirect to login on CategoryAuthentication).
type Category string

const (
	CategoryValidation     Category = "validation"
	CategoryAuthentication Category = "authentication"
	CategoryAuthorization  Category = "authorization"
	CategoryNotFound       Category = "not_found"
	CategoryConflict       Category = "conflict"
	CategoryFileError      Category = "file_error"
	CategoryServerError    Category = "server_error"
	CategoryNetworkError   Category = "network_error"
	CategoryUnknown        Category = "unknown"
)

// NormalizedError is the single error type produced by Dispatch. Every failed
// call, whether it died in validation, on the wire, or with an HTTP error
// status, surfaces as exactly one of these.
type NormalizedError struct {
	// Message is a human-readable description, preferring the server-provided
	// message when one was received.
	Message string
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Category is derived from StatusCode per categoryForStatus, except for
	// failures raised before any network call.
	Category Category
	// Endpoint is the symbolic endpoint name that failed.
	Endpoint string

	cause error
}

// Error implements the error interface.
func (e *NormalizedError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = CategoryMessage(e.Category)
	}
	if e.Endpoint == "" {
		return fmt.Sprintf("%s: %s", e.Category, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Endpoint, e.Category, msg)
}

// Unwrap exposes the underlying cause (validation error, transport error)
// for errors.Is/errors.As.
func (e *NormalizedError) Unwrap() error { return e.cause }

// categoryForStatus maps a received HTTP status to its category. Statuses
// below 400 never reach this function.
func categoryForStatus(status int) Category {
	switch {
	case status == http.StatusBadRequest:
		return CategoryValidation
	case status == http.StatusUnauthorized:
		return CategoryAuthentication
	case status == http.StatusForbidden:
		return CategoryAuthorization
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status == http.StatusConflict:
		return CategoryConflict
	case status == http.StatusRequestEntityTooLarge, status == http.StatusUnsupportedMediaType:
		return CategoryFileError
	case status >= 500:
		return CategoryServerError
	default:
		return CategoryUnknown
	}
}

// CategoryMessage returns the user-facing fallback sentence for a category,
// used when the server supplied no message of its own.
func CategoryMessage(c Category) string {
	switch c {
	case CategoryValidation:
		return "Some of the provided information is invalid."
	case CategoryAuthentication:
		return "You need to be logged in to do that."
	case CategoryAuthorization:
		return "You are not allowed to do that."
	case CategoryNotFound:
		return "The requested item could not be found."
	case CategoryConflict:
		return "This conflicts with something that already exists."
	case CategoryFileError:
		return "The file could not be processed."
	case CategoryServerError:
		return "Something went wrong on our side. Please try again later."
	case CategoryNetworkError:
		return "Could not reach the server. Check your connection."
	default:
		return "An unexpected error occurred."
	}
}

// decodeAPIError turns an HTTP error response into a NormalizedError,
// extracting the server's message when the body carries one.
func decodeAPIError(resp *http.Response, endpoint string) *NormalizedError {
	nerr := &NormalizedError{
		StatusCode: resp.StatusCode,
		Category:   categoryForStatus(resp.StatusCode),
		Endpoint:   endpoint,
	}
	data, _ := io.ReadAll(resp.Body)
	if len(data) == 0 {
		nerr.Message = CategoryMessage(nerr.Category)
		return nerr
	}
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		switch {
		case payload.Error.Message != "":
			nerr.Message = payload.Error.Message
		case payload.Message != "":
			nerr.Message = payload.Message
		}
	}
	if nerr.Message == "" {
		nerr.Message = CategoryMessage(nerr.Category)
	}
	return nerr
}
