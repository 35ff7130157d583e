package devstore

import (
	"fmt"
	"net/http"

	"notekeep/internal/domain/entity"
)

// APIError is the JSON error body the store returns; the status code never
// serializes.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

var (
	MalformedBodyError  = NewAPIError(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewAPIError(http.StatusInternalServerError, "Internal server error")
	NotFoundError       = NewAPIError(http.StatusNotFound, "Resource not found")
	UnauthorizedError   = NewAPIError(http.StatusUnauthorized, "Missing or invalid bearer token")
)

func NewAPIError(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

// FromValidationError flattens a record validation failure into the error
// body.
func FromValidationError(verr *entity.ValidationError) *APIError {
	return NewAPIError(http.StatusBadRequest, verr.Error())
}
