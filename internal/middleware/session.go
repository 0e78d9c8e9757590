package middleware

import (
	"ecowsco/internal/logger"
	"ecowsco/internal/reqctx"
	"ecowsco/internal/session"
	"net/http"

	"go.uber.org/zap"
)

// Sessions загружает сессию по cookie и кладёт её и принципала в контекст.
// Без cookie (или с чужой подписью) запрос идёт дальше анонимным.
func Sessions(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := m.Load(r)
			if err != nil {
				logger.WithCtx(r.Context()).Error("Session store unavailable", zap.Error(err))
				http.Error(w, "Service temporarily unavailable", http.StatusServiceUnavailable)
				return
			}

			ctx := WithSession(r.Context(), sess)
			ctx = reqctx.WithPrincipal(ctx, sess.Principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
