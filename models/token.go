package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the signed session carrier handed to the presentation boundary.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set; the "sub"
// claim holds the authenticated user id and is absent for anonymous
// sessions. Page, Username and DisplayName are private claims that let the
// server rebuild the session without a lookup.
type Token struct {
	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Page is the page the session rests on.
	Page Page `json:"page"`

	// Username of the authenticated user. Empty when anonymous.
	Username string `json:"username,omitempty"`

	// DisplayName of the authenticated user. Empty when anonymous.
	DisplayName string `json:"display_name,omitempty"`

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is a parsed copy of the "sub" claim. Zero when anonymous.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
// An empty subject yields zero and no error: the session is anonymous.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userIDString == "" {
		return 0, nil
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
