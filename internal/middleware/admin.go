package middleware

import "net/http"

type AdminChecker interface {
	IsAdmin(userID int64) bool
}

// AdminOnly rejects authenticated callers outside the injected admin set.
func AdminOnly(admins AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !admins.IsAdmin(userID) {
				http.Error(w, "admin rights required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
