package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"github.com/MKhiriev/go-theatre-ai/internal/crypto"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/mock"
	"github.com/MKhiriev/go-theatre-ai/internal/store"
	"github.com/MKhiriev/go-theatre-ai/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestIdentitySvc(t *testing.T, ctrl *gomock.Controller) (IdentityService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewIdentityService(repo, hasher, logger.Nop()), repo, hasher
}

func aliceRequest() models.RegistrationRequest {
	return models.RegistrationRequest{
		Username:  "alice",
		Password:  "pw1",
		Email:     "a@x.io",
		FirstName: "Alice",
		LastName:  "A",
		Phone:     "1",
	}
}

// lightHasher keeps argon2 cheap in tests that use the real implementation.
func lightHasher() crypto.PasswordHasher {
	return crypto.NewPasswordHasher(config.App{PasswordHashTime: 1, PasswordHashMemory: 1024, PasswordHashThreads: 1})
}

// ── Register ──────────────────────────────────────────────────────────────────

func TestIdentityService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestIdentitySvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().Hash("pw1").Return("$argon2id$hash", nil),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, "$argon2id$hash", u.PasswordHash, "plaintext must never reach the store")
				assert.Equal(t, "a@x.io", u.Email)
				assert.Equal(t, "Alice", u.FirstName)
				assert.Equal(t, "A", u.LastName)
				assert.Equal(t, "1", u.Phone)
				u.UserID = 1
				return u, nil
			},
		),
	)

	user, err := svc.Register(ctx, aliceRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestIdentityService_Register_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "username taken", repoErr: store.ErrUsernameTaken, wantErr: ErrUsernameTaken},
		{name: "email taken", repoErr: store.ErrEmailTaken, wantErr: ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestIdentitySvc(t, ctrl)

			hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
			repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.repoErr)

			_, err := svc.Register(context.Background(), aliceRequest())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIdentityService_Register_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestIdentitySvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("entropy exhausted"))

	_, err := svc.Register(context.Background(), aliceRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error hashing password")
}

// ── Authenticate ──────────────────────────────────────────────────────────────

func TestIdentityService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestIdentitySvc(t, ctrl)
	stored := models.User{UserID: 1, Username: "alice", PasswordHash: "stored"}

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
	hasher.EXPECT().Verify("pw1", "stored").Return(true, nil)

	user, err := svc.Authenticate(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestIdentityService_Authenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestIdentitySvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{UserID: 1, PasswordHash: "stored"}, nil)
	hasher.EXPECT().Verify("wrong", "stored").Return(false, nil)

	_, err := svc.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIdentityService_Authenticate_UnknownUserStillHashes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestIdentitySvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, fmt.Errorf("wrapped: %w", store.ErrNoUserWasFound)).Times(2)
	hasher.EXPECT().Hash(decoyPassword).Return("decoy", nil).Times(1)
	hasher.EXPECT().Verify("pw", "decoy").Return(false, nil).Times(2)

	_, err := svc.Authenticate(context.Background(), "bob", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "bob", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIdentityService_Authenticate_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestIdentitySvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrScanningRow)

	_, err := svc.Authenticate(context.Background(), "alice", "pw1")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrScanningRow)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestIdentityService_Authenticate_CorruptHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestIdentitySvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{UserID: 1, PasswordHash: "garbage"}, nil)
	hasher.EXPECT().Verify("pw1", "garbage").Return(false, crypto.ErrInvalidHash)

	_, err := svc.Authenticate(context.Background(), "alice", "pw1")
	assert.ErrorIs(t, err, crypto.ErrInvalidHash)
}

// TestIdentityService_RealHasher_RoundTrip registers with the argon2 hasher
// and authenticates against what the repository received.
func TestIdentityService_RealHasher_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewIdentityService(repo, lightHasher(), logger.Nop())

	var stored models.User
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 1
			stored = u
			return u, nil
		},
	)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").DoAndReturn(
		func(context.Context, string) (models.User, error) { return stored, nil },
	).Times(3)

	_, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", stored.PasswordHash)

	user, err := svc.Authenticate(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)

	_, err = svc.Authenticate(context.Background(), "alice", "PW1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "alice", "pw1 ")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ── validation wrapper ────────────────────────────────────────────────────────

func TestIdentityValidationService_Register_EmptyField(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner, _, _ := newTestIdentitySvc(t, ctrl)
	svc := NewIdentityValidationService().Wrap(inner)

	req := aliceRequest()
	req.Phone = ""

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestIdentityValidationService_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner, repo, hasher := newTestIdentitySvc(t, ctrl)
	svc := NewIdentityValidationService().Wrap(inner)

	hasher.EXPECT().Hash("pw1").Return("h", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 5}, nil)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "").Return(models.User{}, store.ErrNoUserWasFound)
	hasher.EXPECT().Hash(decoyPassword).Return("decoy", nil)
	hasher.EXPECT().Verify("", "decoy").Return(false, nil)

	user, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)

	_, err = svc.Authenticate(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
