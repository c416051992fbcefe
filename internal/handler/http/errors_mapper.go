package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-theatre-ai/internal/session"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{session.ErrInvalidDataProvided, http.StatusBadRequest},
	{session.ErrUnknownPage, http.StatusBadRequest},
	{session.ErrInvalidCredentials, http.StatusUnauthorized},
	{ErrSessionExpired, http.StatusUnauthorized},
	{session.ErrNotAuthenticated, http.StatusForbidden},
	{session.ErrAlreadyAuthenticated, http.StatusForbidden},
	{session.ErrUsernameTaken, http.StatusConflict},
	{session.ErrEmailTaken, http.StatusConflict},
	{session.ErrWrongPage, http.StatusConflict},
}

func statusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
