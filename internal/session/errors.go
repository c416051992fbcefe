package session

import (
	"errors"

	"github.com/MKhiriev/go-theatre-ai/internal/service"
)

var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	ErrUnknownPage          = errors.New("unknown page")
	ErrWrongPage            = errors.New("operation is not available on this page")

	ErrInvalidCredentials  = service.ErrInvalidCredentials
	ErrUsernameTaken       = service.ErrUsernameTaken
	ErrEmailTaken          = service.ErrEmailTaken
	ErrInvalidDataProvided = service.ErrInvalidDataProvided
	ErrUnknownOwner        = service.ErrUnknownOwner
)
