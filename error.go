package distill

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// Codes are returned to API clients verbatim, so they are spelled the way
// the HTTP API documents them.
const (
	EINVALID     = "INVALID_REQUEST"
	EINVALIDURL  = "INVALID_URL"
	ENOFILE      = "NO_FILE_UPLOADED"
	EUNSUPPORTED = "UNSUPPORTED_MEDIA_TYPE"
	ENOTFOUND    = "NOT_FOUND"
	EINTERNAL    = "INTERNAL_SERVER_ERROR"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
//
// Any non-application error (such as a browser or network failure) is
// reported as EINTERNAL.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("distill error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsValidation reports whether err was caused by the client (bad URL, missing
// or unsupported upload, malformed request). Everything else is an
// extraction failure on our side.
func IsValidation(err error) bool {
	switch ErrorCode(err) {
	case EINVALID, EINVALIDURL, ENOFILE, EUNSUPPORTED, ENOTFOUND:
		return true
	}
	return false
}

// Internal returns err unchanged if it already carries an application code,
// otherwise it wraps the original message into an EINTERNAL error.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Errorf(EINTERNAL, "%s", err.Error())
}
