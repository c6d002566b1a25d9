package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
)

// Stable error codes surfaced to clients.
const (
	CodeDuplicateAccount   = "DUPLICATE_ACCOUNT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAccountInactive    = "ACCOUNT_INACTIVE"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeAuthorNotFound     = "AUTHOR_NOT_FOUND"
	CodePostNotFound       = "POST_NOT_FOUND"
	CodeNotOwner           = "NOT_OWNER"
	CodePostDeleted        = "POST_DELETED"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

func NewDuplicateAccount() error {
	return NewDomainError(CodeDuplicateAccount, "account with this email already exists", http.StatusConflict, nil)
}

func NewInvalidCredentials() error {
	return NewDomainError(CodeInvalidCredentials, "invalid email or password", http.StatusUnauthorized, nil)
}

func NewAccountInactive() error {
	return NewDomainError(CodeAccountInactive, "account is inactive", http.StatusForbidden, nil)
}

func NewUnauthenticated(message string) error {
	return NewDomainError(CodeUnauthenticated, message, http.StatusUnauthorized, nil)
}

func NewAuthorNotFound() error {
	return NewDomainError(CodeAuthorNotFound, "author not found", http.StatusNotFound, nil)
}

func NewPostNotFound() error {
	return NewDomainError(CodePostNotFound, "post not found", http.StatusNotFound, nil)
}

func NewNotOwner() error {
	return NewDomainError(CodeNotOwner, "you do not have permission to modify this post", http.StatusForbidden, nil)
}

func NewPostDeleted() error {
	return NewDomainError(CodePostDeleted, "cannot update a deleted post", http.StatusBadRequest, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &DomainError{
			Code:       CodePostNotFound,
			Message:    "resource not found",
			HTTPStatus: http.StatusNotFound,
		}
	}
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err is a DomainError carrying the given code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
