package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing salted
// hashes and checks candidates against them.
//
// The encoded form carries the KDF parameters, so hashes produced under
// older parameters keep verifying after the configuration changes.
type PasswordHasher interface {
	// Hash derives a new salted hash of password. Two calls with the same
	// password return different strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value is an error, a mismatch is (false, nil).
	Verify(password, encoded string) (bool, error)
}
