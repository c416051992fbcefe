package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-theatre-ai/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aliceSession = models.Session{UserID: 123, Username: "alice", DisplayName: "Alice A", Page: models.PageHistory}

func TestGenerateSessionToken_Success(t *testing.T) {
	token, err := GenerateSessionToken("test-issuer", aliceSession, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.String())
	assert.Equal(t, "test-issuer", token.Issuer)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, models.PageHistory, token.Page)
	assert.Equal(t, "Alice A", token.DisplayName)
}

func TestGenerateSessionToken_AnonymousHasNoSubject(t *testing.T) {
	token, err := GenerateSessionToken("iss", models.Session{Page: models.PageRegister, Username: "stale"}, time.Hour, "k")
	require.NoError(t, err)

	assert.Empty(t, token.Subject)
	assert.Empty(t, token.Username)

	s, err := ParseSessionToken(token.String(), "k", "iss")
	require.NoError(t, err)
	assert.Equal(t, models.Session{Page: models.PageRegister}, s)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, aliceSession, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestParseSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("iss", aliceSession, time.Hour, "k")
	require.NoError(t, err)

	s, err := ParseSessionToken(token.String(), "k", "iss")
	require.NoError(t, err)
	assert.Equal(t, aliceSession, s)
}

func TestParseSessionToken_Rejections(t *testing.T) {
	valid, err := GenerateSessionToken("iss", aliceSession, time.Hour, "k")
	require.NoError(t, err)

	expired, err := GenerateSessionToken("iss", aliceSession, time.Nanosecond, "k")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	noneSigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"iss": "iss", "exp": time.Now().Add(time.Hour).Unix()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "wrong key", token: valid.String(), key: "other", issuer: "iss"},
		{name: "wrong issuer", token: valid.String(), key: "k", issuer: "someone-else"},
		{name: "expired", token: expired.String(), key: "k", issuer: "iss"},
		{name: "malformed", token: "not.a.jwt", key: "k", issuer: "iss"},
		{name: "alg none", token: noneSigned, key: "k", issuer: "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseSessionToken_NormalizesPage(t *testing.T) {
	token, err := GenerateSessionToken("iss", models.Session{Page: models.PageHistory}, time.Hour, "k")
	require.NoError(t, err)

	s, err := ParseSessionToken(token.String(), "k", "iss")
	require.NoError(t, err)
	assert.Equal(t, models.NewSession(), s)
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	tok, err = ParseBearerToken("  bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", tok)

	for _, bad := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(bad)
		assert.Error(t, err, bad)
	}
}
