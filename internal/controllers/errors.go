package controllers

import (
	"errors"
	"net/http"

	"github.com/spend-tracker/backend/internal/gold"
	"github.com/spend-tracker/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// Auth errors
var (
	errInvalidCredentials = errors.New("the email or password is incorrect")
	errNoToken            = errors.New("a bearer token is required, sign in to get one")
	errInvalidToken       = errors.New("the session is invalid or expired, sign in again")
	errPasswordTooShort   = errors.New("the password must have at least 8 characters")
)

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, gold.ErrPriceUnavailable) {
		return http.StatusBadGateway
	}

	if errors.Is(err, errInvalidCredentials) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrMemberNameNotUnique) || errors.Is(err, models.ErrEmailNotUnique) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}
