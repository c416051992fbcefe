package service

import (
	"context"

	"github.com/MKhiriev/go-theatre-ai/models"
)

// IdentityService registers users and checks their credentials.
type IdentityService interface {
	// Register stores a new user built from request. The password is hashed
	// before it reaches the store. Returns ErrUsernameTaken or ErrEmailTaken on
	// collisions and ErrInvalidDataProvided when a required field is empty.
	Register(ctx context.Context, request models.RegistrationRequest) (models.User, error)

	// Authenticate returns the user whose username and password match exactly.
	// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// CreationService stores creations and lists them per owner.
type CreationService interface {
	// AddCreation stores a creation for ownerID. Theme is not checked; era and
	// description may be nil. Returns ErrUnknownOwner when ownerID does not
	// belong to a registered user.
	AddCreation(ctx context.Context, ownerID int64, theme string, era, description *string) (models.Creation, error)

	// ListByOwner returns the creations of ownerID in submission order.
	// The result is empty, never nil, when the owner has none.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Creation, error)
}

// GalleryService exposes the static catalog of pieces.
type GalleryService interface {
	// Catalog returns the pieces in catalog order. The catalog is the same
	// for every caller.
	Catalog(ctx context.Context) ([]models.GalleryPiece, error)
}

// AppInfoService reports metadata about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IdentityServiceWrapper defines middleware composition for IdentityService.
// Implementations wrap an existing IdentityService to add behavior such as
// validation.
type IdentityServiceWrapper interface {
	Wrap(IdentityService) IdentityService
}

// CreationServiceWrapper defines middleware composition for CreationService.
type CreationServiceWrapper interface {
	Wrap(CreationService) CreationService
}
