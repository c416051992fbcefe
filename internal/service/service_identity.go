// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-theatre-ai/internal/crypto"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/store"
	"github.com/MKhiriev/go-theatre-ai/models"
)

// decoyPassword is hashed once and verified against whenever a login names
// an unknown user, so both failure paths cost one KDF run.
const decoyPassword = "theatre-ai decoy password"

// identityService is the concrete implementation of IdentityService.
// It keeps users in a UserRepository and never sees or stores plaintext
// passwords beyond the duration of a call.
type identityService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and checks salted password hashes.
	hasher crypto.PasswordHasher

	decoyOnce sync.Once
	decoyHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewIdentityService constructs an IdentityService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use.
func NewIdentityService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register hashes the password and delegates persistence to the
// UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - store.ErrUsernameTaken / store.ErrEmailTaken wrapped, on collisions.
//   - A wrapped hashing or storage error otherwise.
func (s *identityService) Register(ctx context.Context, request models.RegistrationRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*identityService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		PasswordHash: hash,
		Email:        request.Email,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Phone:        request.Phone,
	})
	if err != nil {
		log.Err(err).
			Str("func", "*identityService.Register").
			Str("username", request.Username).
			Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Authenticate looks the user up by username and verifies password against
// the stored hash.
//
// Returns the stored user or:
//   - ErrInvalidCredentials if the username is unknown or the password does
//     not match.
//   - A wrapped storage or hash-format error otherwise.
func (s *identityService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		s.verifyDecoy(password)
		log.Debug().Str("username", username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*identityService.Authenticate").Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("stored password hash is unreadable")
		return models.User{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (s *identityService) verifyDecoy(password string) {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash(decoyPassword)
		if err != nil {
			s.logger.Err(err).Msg("error hashing decoy password")
			return
		}
		s.decoyHash = hash
	})

	if s.decoyHash == "" {
		return
	}
	_, _ = s.hasher.Verify(password, s.decoyHash)
}
