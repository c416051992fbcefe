package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-theatre-ai/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by GenerateSessionToken when issuer,
// duration or key is missing.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateSessionToken creates a signed HMAC-SHA256 JWT carrying s.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID, omitted for anonymous sessions
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - page, username, display_name: the rest of the session
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("theatre-ai", session, time.Hour, "secret")
func GenerateSessionToken(issuer string, s models.Session, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Page: s.Page,
	}
	if s.Authenticated() {
		claims.Subject = strconv.FormatInt(s.UserID, 10)
		claims.Username = s.Username
		claims.DisplayName = s.DisplayName
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	claims.SignedString = tokenString
	claims.UserID = s.UserID
	return *claims, nil
}

// ParseSessionToken validates tokenString and rebuilds the session it carries.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) conversion to int64 when present
//
// The returned session is normalized, so a token can never place a session
// on a page its auth state does not allow.
func ParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Session, error) {
	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Session{}, err
	}

	s := models.Session{Page: claims.Page}
	if userID > 0 {
		s.UserID = userID
		s.Username = claims.Username
		s.DisplayName = claims.DisplayName
	}

	return s.Normalized(), nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
