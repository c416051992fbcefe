package store

import (
	"context"

	"github.com/MKhiriev/go-theatre-ai/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns ErrUsernameTaken or ErrEmailTaken on collisions; the username
	// check wins when both collide.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns ErrNoUserWasFound when no user matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// CreationRepository persists creations of registered users.
type CreationRepository interface {
	// AddCreation returns ErrUnknownOwner when creation.UserID does not exist.
	AddCreation(ctx context.Context, creation models.Creation) (models.Creation, error)
	// ListByOwner returns the creations of ownerID oldest first, never nil.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Creation, error)
}
