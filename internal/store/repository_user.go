package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table on
// both supported dialects.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Username and email uniqueness are checked and the row is inserted inside
// one transaction. The UNIQUE constraints of the schema stay the final
// arbiter: a violation that slips past the checks is mapped back by
// constraint name.
//
// Error handling:
//   - username exists → [ErrUsernameTaken] (checked first).
//   - email exists → [ErrEmailTaken].
//   - any other driver-level error → wrapped with a low-level sentinel.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		taken, err := r.countUsers(ctx, tx, sq.Eq{"username": user.Username})
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameTaken
		}

		taken, err = r.countUsers(ctx, tx, sq.Eq{"email": user.Email})
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}

		query, args, err := buildInsertUserQuery(r.db.builder(), user)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var userID int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&userID); err != nil {
			return mapUserInsertError(err)
		}

		created, err = r.findUser(ctx, tx, sq.Eq{"id": userID})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
			log.Info().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Err(err).Msg("registration collision")
		} else {
			log.Err(err).
				Str("func", "*userRepository.CreateUser").
				Bool("retryable", r.db.retryable(err)).
				Msg("error creating user")
		}
		return models.User{}, err
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("user_id", created.UserID).Msg("user created")
	return created, nil
}

// FindUserByUsername retrieves the user record whose Username matches
// username exactly.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as [ErrScanningRow].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := r.findUser(ctx, r.db, sq.Eq{"username": username})
	if err != nil {
		if !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		}
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) countUsers(ctx context.Context, q DBTX, where sq.Eq) (bool, error) {
	query, args, err := buildCountUsersQuery(r.db.builder(), where)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *userRepository) findUser(ctx context.Context, q DBTX, where sq.Eq) (models.User, error) {
	query, args, err := buildSelectUserQuery(r.db.builder(), where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func mapUserInsertError(err error) error {
	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case constraintUsersUsername:
			return ErrUsernameTaken
		case constraintUsersEmail:
			return ErrEmailTaken
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
