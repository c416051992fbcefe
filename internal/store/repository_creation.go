// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/models"
	sq "github.com/Masterminds/squirrel"
)

// creationRepository is the database/sql implementation of
// [CreationRepository] over the "creations" table.
type creationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCreationRepository constructs a [CreationRepository] backed by db.
func NewCreationRepository(db *DB, logger *logger.Logger) CreationRepository {
	logger.Debug().Msg("creating creation repository")
	return &creationRepository{
		db:     db,
		logger: logger,
	}
}

// AddCreation stores creation for its owner and returns it with ID and
// CreatedAt set. The owner is checked inside the same transaction as the
// insert; the foreign key backs the check up.
func (r *creationRepository) AddCreation(ctx context.Context, creation models.Creation) (models.Creation, error) {
	log := logger.FromContext(ctx)

	var stored models.Creation
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildCountUsersQuery(r.db.builder(), sq.Eq{"id": creation.UserID})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var owners int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&owners); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if owners == 0 {
			return ErrUnknownOwner
		}

		query, args, err = buildInsertCreationQuery(r.db.builder(), creation)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var creationID int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&creationID); err != nil {
			if foreignKeyViolation(err) {
				return ErrUnknownOwner
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildSelectCreationQuery(r.db.builder(), creationID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		stored, err = scanCreation(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*creationRepository.AddCreation").
			Int64("user_id", creation.UserID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error adding creation")
		return models.Creation{}, err
	}

	log.Debug().
		Str("func", "*creationRepository.AddCreation").
		Int64("user_id", stored.UserID).
		Int64("creation_id", stored.ID).
		Msg("creation stored")

	return stored, nil
}

// ListByOwner returns every creation of ownerID ordered by id (insertion
// order). An owner without creations gets an empty, non-nil slice.
func (r *creationRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Creation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCreationsQuery(r.db.builder(), ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*creationRepository.ListByOwner").Int64("user_id", ownerID).Msg("error listing creations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	creations := make([]models.Creation, 0)
	for rows.Next() {
		creation, err := scanCreation(rows)
		if err != nil {
			log.Err(err).Str("func", "*creationRepository.ListByOwner").Int64("user_id", ownerID).Msg("error scanning creation")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		creations = append(creations, creation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return creations, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCreation(row rowScanner) (models.Creation, error) {
	var creation models.Creation
	err := row.Scan(
		&creation.ID,
		&creation.Theme,
		&creation.Era,
		&creation.Description,
		&creation.UserID,
		&creation.CreatedAt,
	)
	if err != nil {
		return models.Creation{}, err
	}

	return creation, nil
}
