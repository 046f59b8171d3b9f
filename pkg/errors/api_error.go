package errors

import (
	"fmt"
	"strings"
)

// APIError is the single error type crossing usecase boundaries. Code is a
// stable machine-readable string, Message is what the client sees, Err keeps
// the underlying cause for logs.
type APIError struct {
	Code    string
	Message string
	MaxSize string // only set for payload_too_large
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

const (
	CodeMissingFile        = "missing_file"
	CodeInvalidRequest     = "invalid_request"
	CodePayloadTooLarge    = "payload_too_large"
	CodeInvalidCutRange    = "invalid_cut_range"
	CodeRemoteService      = "remote_service_error"
	CodeInvalidCredentials = "invalid_credentials"
	CodeDuplicateEmail     = "duplicate_email"
	CodeAllCutsFailed      = "all_cuts_failed"
	CodeInternal           = "internal_error"
)

var (
	ErrMissingFile = func(err error) *APIError {
		return &APIError{Code: CodeMissingFile, Message: "No video file attached", Err: err}
	}
	ErrInvalidRequest = func(msg string) *APIError {
		return &APIError{Code: CodeInvalidRequest, Message: msg}
	}
	ErrInvalidCutRange = func(msg string) *APIError {
		return &APIError{Code: CodeInvalidCutRange, Message: msg}
	}
	ErrRemoteService = func(err error) *APIError {
		return &APIError{Code: CodeRemoteService, Message: "Remote service call failed", Err: err}
	}
	ErrInvalidCredentials = func() *APIError {
		return &APIError{Code: CodeInvalidCredentials, Message: "Invalid email or password"}
	}
	ErrDuplicateEmail = func() *APIError {
		return &APIError{Code: CodeDuplicateEmail, Message: "An account with this email already exists"}
	}
	ErrInternal = func(err error) *APIError {
		return &APIError{Code: CodeInternal, Message: "Internal server error", Err: err}
	}
)

// ErrPayloadTooLarge reports the configured ceiling, never the received size.
func ErrPayloadTooLarge(limit int64) *APIError {
	return &APIError{
		Code:    CodePayloadTooLarge,
		Message: "Uploaded file exceeds the maximum allowed size",
		MaxSize: FormatSize(limit),
	}
}

// ErrAllCutsFailed carries every per-cut failure reason so the client can see
// why nothing was produced.
func ErrAllCutsFailed(reasons []string) *APIError {
	return &APIError{
		Code:    CodeAllCutsFailed,
		Message: "No cut produced a result",
		Err:     fmt.Errorf("%s", strings.Join(reasons, "; ")),
	}
}

// FormatSize renders a byte count the way the client reports limits ("50MB").
func FormatSize(bytes int64) string {
	const mb = 1024 * 1024
	if bytes >= mb && bytes%mb == 0 {
		return fmt.Sprintf("%dMB", bytes/mb)
	}
	if bytes >= 1024 && bytes%1024 == 0 {
		return fmt.Sprintf("%dKB", bytes/1024)
	}
	return fmt.Sprintf("%dB", bytes)
}
