package kanban

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failed board operation.
type ErrorCode string

const (
	ErrCodeMissingParameters  ErrorCode = "missing_parameters"
	ErrCodeInvalidCardID      ErrorCode = "invalid_card_id"
	ErrCodeInvalidColumnID    ErrorCode = "invalid_column_id"
	ErrCodeInvalidTitle       ErrorCode = "invalid_title"
	ErrCodeColumnNotFound     ErrorCode = "column_not_found"
	ErrCodeColumnLookupFailed ErrorCode = "column_lookup_failed"
	ErrCodeSourceColumnUpdate ErrorCode = "source_column_update_failed"
	ErrCodeTargetColumnUpdate ErrorCode = "target_column_update_failed"
	ErrCodeRemoveCardFailed   ErrorCode = "remove_card_failed"
	ErrCodeColumnCreateFailed ErrorCode = "column_create_failed"
	ErrCodeColumnDeleteFailed ErrorCode = "column_delete_failed"
	ErrCodeColumnListFailed   ErrorCode = "column_list_failed"
	ErrCodeCommitFailed       ErrorCode = "commit_failed"
)

// ErrNotFound is returned by repositories when a column row does not exist.
var ErrNotFound = errors.New("column not found")

// Error is a board failure tagged with a code. Err keeps the underlying cause.
type Error struct {
	Code    ErrorCode `json:"error_code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("kanban[%s]: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("kanban[%s]: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an Error without a cause.
func NewError(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap builds an Error around err.
func Wrap(code ErrorCode, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf extracts the code of err, or "" if err is not an *Error.
func CodeOf(err error) ErrorCode {
	var ke *Error
	if errors.As(err, &ke) {
		return ke.Code
	}
	return ""
}

// IsValidation reports whether err was raised before touching the database.
func IsValidation(err error) bool {
	switch CodeOf(err) {
	case ErrCodeMissingParameters, ErrCodeInvalidCardID, ErrCodeInvalidColumnID, ErrCodeInvalidTitle:
		return true
	}
	return false
}
