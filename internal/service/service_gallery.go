// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gopkg.in/yaml.v3"
)

//go:embed gallery.yaml
var embeddedCatalog []byte

// Constructors of the S3 clients. Replaced in tests.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
)

// objectPresigner is the subset of *s3.PresignClient used to sign links.
type objectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type catalogDocument struct {
	Pieces []models.GalleryPiece `yaml:"pieces"`
}

// galleryService serves a catalog loaded once at construction. When a
// bucket is configured, pieces with an object key get a fresh presigned
// link on every call; otherwise the stored links are returned as-is.
type galleryService struct {
	pieces []models.GalleryPiece

	bucket    string
	linkTTL   time.Duration
	presigner objectPresigner

	logger *logger.Logger
}

// NewGalleryService loads the catalog from cfg.CatalogPath, or from the
// embedded document when the path is empty, and prepares link signing when
// cfg.S3Bucket is set.
func NewGalleryService(ctx context.Context, cfg config.Gallery, logger *logger.Logger) (GalleryService, error) {
	data := embeddedCatalog
	if cfg.CatalogPath != "" {
		fileData, err := os.ReadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadingCatalog, err)
		}
		data = fileData
	}

	pieces, err := parseCatalog(data, cfg.S3Bucket != "")
	if err != nil {
		return nil, err
	}

	s := &galleryService{
		pieces:  pieces,
		bucket:  cfg.S3Bucket,
		linkTTL: cfg.LinkTTL,
		logger:  logger,
	}

	if cfg.S3Bucket != "" {
		presigner, err := newPresigner(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("error creating gallery presign client: %w", err)
		}
		s.presigner = presigner
	}

	logger.Info().
		Int("pieces", len(pieces)).
		Bool("signed_links", s.presigner != nil).
		Msg("gallery catalog loaded")

	return s, nil
}

func newPresigner(ctx context.Context, cfg config.Gallery) (*s3.PresignClient, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

// parseCatalog validates the document. Without a bucket an object key
// cannot be signed, so every piece needs a stored link.
func parseCatalog(data []byte, signed bool) ([]models.GalleryPiece, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingCatalog, err)
	}

	if len(doc.Pieces) == 0 {
		return nil, ErrEmptyCatalog
	}

	for i, p := range doc.Pieces {
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("%w: piece %d has no title", ErrInvalidCatalogEntry, i)
		}
		if p.Link == "" && p.ObjectKey == "" {
			return nil, fmt.Errorf("%w: piece %q has neither link nor object key", ErrInvalidCatalogEntry, p.Title)
		}
		if !signed && p.Link == "" {
			return nil, fmt.Errorf("%w: piece %q has no link and no bucket is configured", ErrInvalidCatalogEntry, p.Title)
		}
	}

	return doc.Pieces, nil
}

// Catalog returns a copy of the catalog. A piece whose link cannot be
// signed keeps its stored link; it is an error only when there is none.
func (s *galleryService) Catalog(ctx context.Context) ([]models.GalleryPiece, error) {
	pieces := make([]models.GalleryPiece, len(s.pieces))
	copy(pieces, s.pieces)

	if s.presigner == nil {
		return pieces, nil
	}

	log := logger.FromContext(ctx)
	for i := range pieces {
		if pieces[i].ObjectKey == "" {
			continue
		}

		req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(pieces[i].ObjectKey),
		}, s3.WithPresignExpires(s.linkTTL))
		if err != nil {
			if pieces[i].Link == "" {
				return nil, fmt.Errorf("%w %q: %w", ErrPresigningLink, pieces[i].ObjectKey, err)
			}
			log.Warn().Err(err).Str("object_key", pieces[i].ObjectKey).Msg("falling back to stored gallery link")
			continue
		}

		pieces[i].Link = req.URL
	}

	return pieces, nil
}
