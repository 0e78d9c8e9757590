package middleware

import (
	"context"
	"ecowsco/internal/logger"
	"ecowsco/internal/models"
	"ecowsco/internal/reqctx"
	"ecowsco/internal/services"
	"ecowsco/internal/session"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type vendorSessions interface {
	CurrentVendor(ctx context.Context, sess *session.Session) (*models.Vendor, error)
}

// RequireVendor пропускает только сессию продавца. Остальных отправляет на /login.
// ДОЛЖЕН стоять ПОСЛЕ Sessions.
func RequireVendor(sessions vendorSessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFrom(r.Context())
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			vendor, err := sessions.CurrentVendor(r.Context(), sess)
			if err != nil {
				if !errors.Is(err, services.ErrNotFound) {
					logger.WithCtx(r.Context()).Error("RequireVendor: vendor lookup failed", zap.Error(err))
					http.Error(w, "Service temporarily unavailable", http.StatusServiceUnavailable)
					return
				}
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(reqctx.WithVendor(r.Context(), vendor)))
		})
	}
}

// RequireAdmin пропускает только сессию админа; остальным отдаёт denied
// (форму входа админа).
func RequireAdmin(denied http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFrom(r.Context())
			if !ok || !sess.Principal.IsAdmin() {
				denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
