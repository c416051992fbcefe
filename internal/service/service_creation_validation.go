package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-theatre-ai/internal/validators"
	"github.com/MKhiriev/go-theatre-ai/models"
)

// CreationValidationService refuses creations whose owner id cannot name a
// registered user without touching the store.
type CreationValidationService struct {
	inner     CreationService
	validator validators.Validator
}

func NewCreationValidationService() CreationServiceWrapper {
	return &CreationValidationService{
		validator: validators.NewSessionValidator(),
	}
}

func (v *CreationValidationService) AddCreation(ctx context.Context, ownerID int64, theme string, era, description *string) (models.Creation, error) {
	if err := v.validator.Validate(ctx, models.Creation{UserID: ownerID}, validators.FieldUserID); err != nil {
		return models.Creation{}, fmt.Errorf("%w: %w", ErrUnknownOwner, err)
	}

	return v.inner.AddCreation(ctx, ownerID, theme, era, description)
}

func (v *CreationValidationService) ListByOwner(ctx context.Context, ownerID int64) ([]models.Creation, error) {
	if ownerID <= 0 {
		return make([]models.Creation, 0), nil
	}

	return v.inner.ListByOwner(ctx, ownerID)
}

func (v *CreationValidationService) Wrap(wrapped CreationService) CreationService {
	v.inner = wrapped
	return v
}
