// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains([]string{DriverSQLite, DriverPostgres}, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Gallery.S3Bucket != "" && cfg.Gallery.S3Region == "" {
		return fmt.Errorf("%w: bucket %q has no region", ErrInvalidGalleryConfigs, cfg.Gallery.S3Bucket)
	}
	if cfg.Gallery.LinkTTL <= 0 {
		return fmt.Errorf("%w: link ttl must be positive", ErrInvalidGalleryConfigs)
	}

	return nil
}

func (app App) validate() error {
	if app.PasswordHashTime == 0 || app.PasswordHashMemory == 0 || app.PasswordHashThreads == 0 {
		return fmt.Errorf("%w: password hash parameters must be positive", ErrInvalidAppConfigs)
	}

	switch app.SessionTransport {
	case SessionTransportToken:
		if app.TokenSignKey == "" || app.TokenIssuer == "" || app.TokenDuration <= 0 {
			return fmt.Errorf("%w: token transport needs sign key, issuer and duration", ErrInvalidAppConfigs)
		}
	case SessionTransportCookie:
		if app.CookieAuthKey == "" {
			return fmt.Errorf("%w: cookie transport needs an auth key", ErrInvalidAppConfigs)
		}
		if n := len(app.CookieEncryptionKey); n != 0 && n != 16 && n != 24 && n != 32 {
			return fmt.Errorf("%w: cookie encryption key must be 16, 24 or 32 bytes", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown session transport %q", ErrInvalidAppConfigs, app.SessionTransport)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
