package http

import (
	"net/http"

	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/utils"
)

// withSession restores the session carried by the request and stores it in
// the request context under [utils.SessionCtxKey].
//
// A carrier that cannot be verified is never rejected here: the request goes
// on with the initial session and the context is flagged so that handlers
// needing the previous session can report it as expired.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		s, err := h.codec.Load(r)
		if err != nil {
			log.Warn().Err(err).Msg("carried session could not be restored")
			ctx = utils.WithSessionExpired(ctx)
		}

		ctx = utils.WithSession(ctx, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
