package errs

import (
	"errors"
	"time"
)

// Kind classifies a failure the way the wire contract does: every error that
// crosses a service boundary maps to exactly one kind, and every kind maps to
// one machine-readable default code and one HTTP status.
type Kind int

const (
	KindUnknown Kind = iota
	KindServiceUnavailable
	KindNetwork
	KindValidation
	KindNotFound
	KindConflict
	KindRateLimited
	KindNotAuthenticated
)

func (k Kind) Code() string {
	switch k {
	case KindServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	case KindNetwork:
		return "NETWORK_ERROR"
	case KindValidation:
		return "VALIDATION"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindRateLimited:
		return "RATE_LIMITED"
	case KindNotAuthenticated:
		return "NOT_AUTHENTICATED"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Retriable reports whether a caller may reasonably retry the same request.
func (k Kind) Retriable() bool {
	switch k {
	case KindServiceUnavailable, KindNetwork, KindRateLimited:
		return true
	default:
		return false
	}
}

// E is the typed error raised by the mock services. Code overrides the kind's
// default code when a more specific one applies (e.g. INVALID_FILE_TYPE).
type E struct {
	Kind       Kind
	Code       string
	Message    string
	RetryAfter time.Duration
	Detail     any
}

func (e *E) Error() string {
	return e.Message
}

func (e *E) WireCode() string {
	if e.Code != "" {
		return e.Code
	}
	return e.Kind.Code()
}

func NewE(kind Kind, code, msg string) *E {
	return &E{Kind: kind, Code: code, Message: msg}
}

func Validation(code, msg string, detail any) *E {
	return &E{Kind: KindValidation, Code: code, Message: msg, Detail: detail}
}

func NotFound(msg string) *E {
	return &E{Kind: KindNotFound, Message: msg}
}

func NotAuthenticated() *E {
	return &E{Kind: KindNotAuthenticated, Message: "User not authenticated"}
}

func Unavailable(code, msg string, retryAfter time.Duration) *E {
	return &E{Kind: KindServiceUnavailable, Code: code, Message: msg, RetryAfter: retryAfter}
}

// KindOf extracts the kind from any error chain; unrecognized errors are
// KindUnknown so nothing escapes the taxonomy.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// AsE normalizes any error into an *E, wrapping foreign errors as UNKNOWN.
func AsE(err error) *E {
	var e *E
	if errors.As(err, &e) {
		return e
	}
	return &E{Kind: KindUnknown, Message: err.Error()}
}
