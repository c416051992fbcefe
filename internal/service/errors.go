package service

import (
	"errors"

	"github.com/MKhiriev/go-theatre-ai/internal/store"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")

	ErrUsernameTaken = store.ErrUsernameTaken
	ErrEmailTaken    = store.ErrEmailTaken
	ErrUnknownOwner  = store.ErrUnknownOwner

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrLoadingCatalog      = errors.New("error loading gallery catalog")
	ErrEmptyCatalog        = errors.New("gallery catalog has no pieces")
	ErrInvalidCatalogEntry = errors.New("invalid gallery catalog entry")
	ErrPresigningLink      = errors.New("error presigning gallery link")
)
