package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	CodeConfig     = "CONFIG_ERROR"
	CodeNetwork    = "NETWORK_ERROR"
	CodeSubmission = "SUBMISSION_ERROR"
)

// Error is a classified failure. Every step of a submitter run has exactly
// one of these as its failure exit: missing secret or field is CONFIG_ERROR,
// a connection failure is NETWORK_ERROR, a non-2xx response is SUBMISSION_ERROR.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Config(message string) *Error {
	return &Error{Code: CodeConfig, Message: message}
}

func Network(message string, err error) *Error {
	return &Error{Code: CodeNetwork, Message: message, Err: err}
}

func Submission(message string) *Error {
	return &Error{Code: CodeSubmission, Message: message}
}

// CodeOf returns the classification of err, or "" for unclassified errors.
func CodeOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ExitCode maps an error to the process exit status. All failures are fatal
// and unrecovered; the error kind travels in the message, not the code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
