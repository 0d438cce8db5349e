package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/KoshakFSB/WCWD/internal/hash"
)

// WithHash verifies the HashSHA256 request header against the body when a
// secret key is configured and the caller sent the header.
func WithHash(secretKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headerHash := r.Header.Get("HashSHA256")
			if secretKey == "" || headerHash == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "failed to read body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err := hash.VerifyHash(string(body), secretKey, headerHash); err != nil {
				http.Error(w, "invalid hash", http.StatusBadRequest)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
