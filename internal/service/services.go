package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"github.com/MKhiriev/go-theatre-ai/internal/crypto"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/store"
)

type Services struct {
	IdentityService IdentityService
	CreationService CreationService
	GalleryService  GalleryService
	AppInfoService  AppInfoService
}

func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	galleryService, err := NewGalleryService(ctx, cfg.Gallery, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating gallery service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	identityService := NewIdentityService(storages.UserRepository, crypto.NewPasswordHasher(cfg.App), logger)
	creationService := NewCreationService(storages.CreationRepository, logger)

	return &Services{
		IdentityService: NewIdentityValidationService().Wrap(identityService),
		CreationService: NewCreationValidationService().Wrap(creationService),
		GalleryService:  galleryService,
		AppInfoService:  appInfoService,
	}, nil
}
