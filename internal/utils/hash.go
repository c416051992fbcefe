package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher signs request bodies with keyed HMAC-SHA256. HMAC instances are
// pooled per key so hot paths do not allocate a new one per request.
//
// A Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	signature := h.SumHex(body)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum computes the HMAC-SHA256 digest of data.
//
// Behavior:
//   - Retrieves a hash.Hash instance from the pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex returns Sum(data) hex-encoded, the form carried in the
// HashSHA256 header.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex-encoded digest of data.
// The comparison is constant time.
func (h *Hasher) Verify(data []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(expected, h.Sum(data))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike Hasher, this function creates a new HMAC instance on each call.
// Suitable for one-off hashing.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
