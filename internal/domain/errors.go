package domain

import "errors"

// Error kinds. Every domain error matches exactly one of them with errors.Is.
var (
	ErrLookup          = errors.New("lookup failed")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Domain errors.
var (
	ErrUnknownLanguage = newError("unknown_language", ErrLookup, "unknown language")
	ErrUnknownMessage  = newError("unknown_message", ErrLookup, "unknown message key")
	ErrUserNotFound    = newError("user_not_found", ErrLookup, "user not found")
	ErrAmountRequired  = newError("amount_required", ErrInvalidArgument, "amount is required")
	ErrInvalidAmount   = newError("invalid_amount", ErrInvalidArgument, "amount is not a number")
	ErrNegativeAmount  = newError("negative_amount", ErrInvalidArgument, "amount must not be negative")
)

// Error is a domain error carrying a stable code for user-facing translation.
type Error struct {
	code string
	kind error
	msg  string
}

func newError(code string, kind error, msg string) *Error {
	return &Error{code: code, kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier of e, e.g. "invalid_amount".
func (e *Error) Code() string { return e.code }

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return target == e.kind
}

// Code extracts the domain error code from err, looking through wrapping.
// It returns "" when err carries no domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
