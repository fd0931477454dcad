package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// Stable error codes surfaced in API payloads. Consumers branch on these, so
// they are part of the contract.
const (
	CodeAuthFailed       = "AUTH_401"
	CodeAccountDisabled  = "AUTH_403"
	CodeMissingToken     = "AUTH_ERR_401"
	CodeInvalidToken     = "AUTH_ERR_401"
	CodeTokenExpired     = "AUTH_EXP_401"
	CodeRoleNotPermitted = "AUTH_ROLE_401"
	CodeTeamForbidden    = "AUTH_TEAM_401"
	CodePlayerForbidden  = "AUTH_PLAYER_401"
	CodeDuplicate        = "REG_409"
	CodeRoleNotFound     = "ROLE_ERR_404"
	CodePlayerConflict   = "ACC_PLAYER_400"
	CodeTeamConflict     = "ACC_TEAM_400"
	CodeInternalAdmin400 = "INTERNAL_ADMIN_ERR_400"
	CodeInternalAdmin401 = "INTERNAL_ADMIN_ERR_401"
	CodeNotFound         = "ERR_404"
	CodeInternal         = "ERR_500"
)

// DomainError standardizes application errors carried across service and
// transport layers.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Detail     string
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
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// Authentication failures share one external message family so callers cannot
// probe which check failed; the internal detail survives for logging only.
func NewAuthenticationFailed(detail string) error {
	return &DomainError{
		Code:       CodeAuthFailed,
		Message:    "Username and password does not match",
		HTTPStatus: http.StatusUnauthorized,
		Detail:     detail,
	}
}

func NewAccountDisabled() error {
	return NewDomainError(CodeAccountDisabled, "User disabled", http.StatusForbidden)
}

func NewMissingToken() error {
	return NewDomainError(CodeMissingToken, "Auth token not found in the request", http.StatusUnauthorized)
}

func NewInvalidToken() error {
	return NewDomainError(CodeInvalidToken, "Invalid auth token", http.StatusUnauthorized)
}

func NewTokenExpired() error {
	return NewDomainError(CodeTokenExpired, "Auth token expired", http.StatusUnauthorized)
}

func NewRoleNotPermitted() error {
	return NewDomainError(CodeRoleNotPermitted, "You are not authorized to perform this action", http.StatusUnauthorized)
}

func NewOwnershipDenied(code string) error {
	return NewDomainError(code, "You are not authorized to perform this action", http.StatusUnauthorized)
}

func NewDuplicate(message string) error {
	return NewDomainError(CodeDuplicate, message, http.StatusConflict)
}

func NewRoleNotFound(name string) error {
	return &DomainError{
		Code:       CodeRoleNotFound,
		Message:    "Role does not exist",
		HTTPStatus: http.StatusNotFound,
		Detail:     name,
	}
}

func NewNotFound(resource string) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func NewTeamConflict(message string) error {
	return NewDomainError(CodeTeamConflict, message, http.StatusBadRequest)
}

func NewPlayerConflict(message string) error {
	return NewDomainError(CodePlayerConflict, message, http.StatusBadRequest)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "Something went wrong!",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError. Store-layer errors
// never pass through untranslated.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &DomainError{
			Code:       CodeNotFound,
			Message:    "Data not found",
			HTTPStatus: http.StatusNotFound,
			Err:        err,
		}
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "Something went wrong!",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// MapError converts generic errors to a DomainError value.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}

// CodeOf extracts the wire code from any error.
func CodeOf(err error) string {
	de := ToDomainError(err)
	if de == nil {
		return ""
	}
	return de.Code
}
