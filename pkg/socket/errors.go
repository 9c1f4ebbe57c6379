package socket

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable, machine-readable identifier for a failure class.
type ErrorCode string

const (
	ErrNotSupportedYet   ErrorCode = "NOT_SUPPORTED_YET"
	ErrCreateFailed      ErrorCode = "CREATE_FAILED"
	ErrSetSockOptFailed  ErrorCode = "SETSOCKOPT_FAILED"
	ErrInternal          ErrorCode = "INTERNAL"
	ErrSecurityFailed    ErrorCode = "SECURITY_FAILED"
	ErrGetAddrInfoFailed ErrorCode = "GETADDRINFO_FAILED"
	ErrBindFailed        ErrorCode = "BIND_FAILED"
	ErrWrongProtocol     ErrorCode = "WRONG_PROTOCOL"
	ErrListenFailed      ErrorCode = "LISTEN_FAILED"
	ErrAcceptFailed      ErrorCode = "ACCEPT_FAILED"
	ErrAlreadyClosed     ErrorCode = "ALREADY_CLOSED"
)

// Error carries an error code, a human message, and the underlying
// platform or delegate error when there is one.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, format string, a ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func wrapError(err error, code ErrorCode, format string, a ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, a...), Err: err}
}

// Code extracts the ErrorCode from err, or "" if err does not carry one.
func Code(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
