package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-theatre-ai/internal/validators"
	"github.com/MKhiriev/go-theatre-ai/models"
)

// IdentityValidationService rejects malformed registration input before it
// reaches the wrapped IdentityService.
type IdentityValidationService struct {
	inner     IdentityService
	validator validators.Validator
}

func NewIdentityValidationService() IdentityServiceWrapper {
	return &IdentityValidationService{
		validator: validators.NewSessionValidator(),
	}
}

func (v *IdentityValidationService) Register(ctx context.Context, request models.RegistrationRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, request)
}

// Authenticate passes through: any username/password pair is a well-formed
// login attempt.
func (v *IdentityValidationService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	return v.inner.Authenticate(ctx, username, password)
}

func (v *IdentityValidationService) Wrap(wrapped IdentityService) IdentityService {
	v.inner = wrapped
	return v
}
