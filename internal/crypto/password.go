// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"golang.org/x/crypto/argon2"
)

const (
	saltLength = 16
	keyLength  = 32
)

var (
	// ErrInvalidHash is returned by Verify when the encoded hash is not in
	// the $argon2id$v=..$m=..,t=..,p=..$salt$hash form.
	ErrInvalidHash = errors.New("invalid encoded password hash")
	// ErrIncompatibleVersion is returned by Verify when the hash was produced
	// by another argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// argon2Hasher is the Argon2id implementation of [PasswordHasher].
type argon2Hasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	time    uint32
	memory  uint32
	threads uint8
}

// NewPasswordHasher constructs a [PasswordHasher] using the Argon2id
// parameters from cfg (iterations, memory in KiB, parallelism).
// The OWASP baseline is 1 iteration, 64 MiB and 4 threads.
func NewPasswordHasher(cfg config.App) PasswordHasher {
	return &argon2Hasher{
		time:    cfg.PasswordHashTime,
		memory:  cfg.PasswordHashMemory,
		threads: cfg.PasswordHashThreads,
	}
}

// Hash implements [PasswordHasher]. It reads a 16-byte salt from the OS
// CSPRNG and returns $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<key>
// with salt and key in unpadded standard Base64.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher]. The candidate key is derived with the
// parameters and salt stored in encoded and compared in constant time.
func (h *argon2Hasher) Verify(password, encoded string) (bool, error) {
	p, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeHash(encoded string) (p argon2Hasher, salt, key []byte, err error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return p, nil, nil, ErrIncompatibleVersion
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return p, nil, nil, ErrInvalidHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrInvalidHash
	}

	return p, salt, key, nil
}
