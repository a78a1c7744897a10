package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/commonpurse/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrNoBudgetPermission) {
		return http.StatusForbidden
	}

	if errors.Is(err, models.ErrCollaboratorExists) || errors.Is(err, models.ErrEmailAlreadyRegistered) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Collaborator errors
var (
	errSelfInvite      = errors.New("you cannot invite yourself")
	errOwnerRemoval    = errors.New("the budget owner cannot be removed from their own budget")
	errOwnerRoleChange = errors.New("the budget owner's role cannot be changed")

	// Phrased so that callers cannot distinguish a budget they do not
	// own from one that does not exist
	errNotFoundOrNotOwner = fmt.Errorf("%w budget matching your query, or you are not its owner", models.ErrResourceNotFound)
)

// Auth errors
var (
	errInvalidCredentials = errors.New("invalid email address or password")
	errEmailEmpty         = errors.New("the email address must not be empty")
)

// User search errors
var errEmailParameterMissing = errors.New("the email query parameter must be set")
