package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/utils"
)

const contentHashHeader = "X-Content-Hash"

// withContentHash rejects write requests whose X-Content-Hash header does
// not match the content hash of their body. Requests without the header
// pass unchecked.
func (h *Handler) withContentHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := r.Header.Get(contentHashHeader)
		if want == "" {
			next.ServeHTTP(w, r)
			return
		}
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withContentHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := utils.ContentHash(body)
		if hashedBody != want {
			log.Error().Str("func", "*Handler.withContentHash").
				Str("hash from request", want).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, ErrContentHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
