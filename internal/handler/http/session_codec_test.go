package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-theatre-ai/internal/utils"
	"github.com/MKhiriev/go-theatre-ai/models"
	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bob = models.Session{UserID: 7, Username: "bob", DisplayName: "Bob B", Page: models.PageGallery}

func newTokenCodec() *tokenCodec {
	return &tokenCodec{issuer: testIssuer, signKey: testSignKey, duration: time.Hour}
}

// roundTrip saves s with codec and loads it back from a request carrying
// what the response set.
func roundTrip(t *testing.T, codec sessionCodec, s models.Session) (models.Session, error) {
	t.Helper()

	rr := httptest.NewRecorder()
	require.NoError(t, codec.Save(rr, httptest.NewRequest(http.MethodGet, "/", nil), s))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth := rr.Header().Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	for _, cookie := range rr.Result().Cookies() {
		req.AddCookie(cookie)
	}

	return codec.Load(req)
}

// ── tokenCodec ────────────────────────────────────────────────────────────────

func TestTokenCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   models.Session
		want models.Session
	}{
		{name: "authenticated", in: bob, want: bob},
		{name: "anonymous register", in: models.Session{Page: models.PageRegister}, want: models.Session{Page: models.PageRegister}},
		{name: "initial", in: models.NewSession(), want: models.NewSession()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := roundTrip(t, newTokenCodec(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenCodec_MissingHeaderIsInitial(t *testing.T) {
	s, err := newTokenCodec().Load(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, models.NewSession(), s)
}

func TestTokenCodec_Rejections(t *testing.T) {
	foreign, err := utils.GenerateSessionToken("someone-else", bob, time.Hour, testSignKey)
	require.NoError(t, err)
	wrongKey, err := utils.GenerateSessionToken(testIssuer, bob, time.Hour, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "bearer without token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "garbage token", header: "Bearer garbage"},
		{name: "foreign issuer", header: "Bearer " + foreign.String()},
		{name: "wrong key", header: "Bearer " + wrongKey.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tt.header)

			s, err := newTokenCodec().Load(req)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, models.NewSession(), s)
		})
	}
}

// ── cookieCodec ───────────────────────────────────────────────────────────────

func TestCookieCodec_RoundTrip(t *testing.T) {
	for _, encKey := range []string{"", testCookieEnc} {
		codec := newCookieCodec(testCookieAuth, encKey, time.Hour)

		got, err := roundTrip(t, codec, bob)
		require.NoError(t, err)
		assert.Equal(t, bob, got)

		got, err = roundTrip(t, codec, models.Session{Page: models.PageRegister})
		require.NoError(t, err)
		assert.Equal(t, models.Session{Page: models.PageRegister}, got)
	}
}

func TestCookieCodec_SetsCookieAttributes(t *testing.T) {
	rr := httptest.NewRecorder()
	codec := newCookieCodec(testCookieAuth, testCookieEnc, time.Hour)
	require.NoError(t, codec.Save(rr, httptest.NewRequest(http.MethodGet, "/", nil), bob))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestCookieCodec_MissingCookieIsInitial(t *testing.T) {
	codec := newCookieCodec(testCookieAuth, testCookieEnc, time.Hour)

	s, err := codec.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, models.NewSession(), s)
}

func TestCookieCodec_ForeignKeyIsRejected(t *testing.T) {
	rr := httptest.NewRecorder()
	other := newCookieCodec("another-auth-key-another-auth-ke", "", time.Hour)
	require.NoError(t, other.Save(rr, httptest.NewRequest(http.MethodGet, "/", nil), bob))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rr.Result().Cookies() {
		req.AddCookie(cookie)
	}

	s, err := newCookieCodec(testCookieAuth, "", time.Hour).Load(req)
	assert.ErrorIs(t, err, ErrInvalidSessionCookie)
	assert.Equal(t, models.NewSession(), s)
}

func TestCookieCodec_MalformedValues(t *testing.T) {
	// a cookie signed with the right key but holding a string user id
	sc := securecookie.New([]byte(testCookieAuth), nil)
	encoded, err := securecookie.EncodeMulti(sessionCookieName, map[any]any{
		cookieUserID:      "7",
		cookieUsername:    "bob",
		cookieDisplayName: "Bob B",
		cookiePage:        "Gallery",
	}, sc)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: encoded})

	s, err := newCookieCodec(testCookieAuth, "", time.Hour).Load(req)
	assert.ErrorIs(t, err, ErrMalformedSessionCookie)
	assert.Equal(t, models.NewSession(), s)
}

func TestCookieCodec_NormalizesIllegalPage(t *testing.T) {
	codec := newCookieCodec(testCookieAuth, "", time.Hour)

	got, err := roundTrip(t, codec, models.Session{Page: models.PageHistory})
	require.NoError(t, err)
	assert.Equal(t, models.NewSession(), got)
}
