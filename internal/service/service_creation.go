package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/store"
	"github.com/MKhiriev/go-theatre-ai/models"
)

type creationService struct {
	creationRepository store.CreationRepository
	logger             *logger.Logger
}

func NewCreationService(creationRepository store.CreationRepository, logger *logger.Logger) CreationService {
	return &creationService{
		creationRepository: creationRepository,
		logger:             logger,
	}
}

func (s *creationService) AddCreation(ctx context.Context, ownerID int64, theme string, era, description *string) (models.Creation, error) {
	log := logger.FromContext(ctx)

	creation, err := s.creationRepository.AddCreation(ctx, models.Creation{
		Theme:       theme,
		Era:         era,
		Description: description,
		UserID:      ownerID,
	})
	if err != nil {
		log.Err(err).Str("func", "*creationService.AddCreation").Int64("user_id", ownerID).Msg("error saving creation")
		return models.Creation{}, fmt.Errorf("error saving creation: %w", err)
	}

	return creation, nil
}

func (s *creationService) ListByOwner(ctx context.Context, ownerID int64) ([]models.Creation, error) {
	creations, err := s.creationRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*creationService.ListByOwner").
			Int64("user_id", ownerID).
			Msg("error listing creations")
		return nil, fmt.Errorf("error listing creations: %w", err)
	}

	return creations, nil
}
