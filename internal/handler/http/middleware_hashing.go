package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/utils"
)

// hashHeader carries hex(HMAC-SHA256(body)) of a request body.
const hashHeader = "HashSHA256"

const msgIntegrityCheckFailed = "Integrity check failed"

// withIntegrityCheck verifies the HashSHA256 header of every request with a
// non-empty body. It is a no-op when no hash key is configured.
func (h *Handler) withIntegrityCheck(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if r.Body == nil || r.Method == http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		signature := r.Header.Get(hashHeader)
		if !h.hasher.Verify(body, signature) {
			log.Error().
				Str("hash from request", signature).
				Str("hashed body", h.hasher.SumHex(body)).
				Msg("hashes are not equal")

			s, _ := utils.GetSessionFromContext(r.Context())
			h.reject(w, r, s, http.StatusBadRequest, msgIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
