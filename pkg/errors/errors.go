package errors

import "fmt"

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork     ErrorType = "network"
	ErrorTypeBlocked     ErrorType = "blocked"
	ErrorTypeNotImage    ErrorType = "not_image"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeServerError ErrorType = "server_error"
	ErrorTypeBrowser     ErrorType = "browser"
	ErrorTypeUnknown     ErrorType = "unknown"
)

// Error represents a scraper error with type information
type Error struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
}

// New creates an Error of the given type.
func New(errorType ErrorType, message string) *Error {
	return &Error{Type: errorType, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(errorType ErrorType, format string, args ...interface{}) *Error {
	return &Error{Type: errorType, Message: fmt.Sprintf(format, args...)}
}

// IsFatal reports whether an error type should abort the entire run.
// Only browser failures and provider blocks are fatal; everything else is
// recovered locally by skipping the affected image or category.
func IsFatal(errorType ErrorType) bool {
	switch errorType {
	case ErrorTypeBrowser, ErrorTypeBlocked:
		return true
	default:
		return false
	}
}

// IsRetryable checks if an error type is transient. Image downloads are
// never retried regardless; the classification exists for callers that want
// to distinguish transient failures in logs.
func IsRetryable(errorType ErrorType) bool {
	switch errorType {
	case ErrorTypeNetwork, ErrorTypeServerError:
		return true
	case ErrorTypeBlocked, ErrorTypeNotImage, ErrorTypeNotFound, ErrorTypeBrowser:
		return false
	default:
		return false
	}
}

// IsRetryableStatusCode checks if an HTTP status code indicates a transient error
func IsRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case 0: // Network error
		return true
	case 429: // Too Many Requests
		return true
	case 500, 502, 503, 504: // Server errors
		return true
	case 401, 403, 404: // Client errors that won't change
		return false
	default:
		return statusCode >= 500
	}
}
