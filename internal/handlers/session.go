package handlers

import (
	"ecowsco/internal/middleware"
	"ecowsco/internal/session"
	"net/http"
)

// currentSession: сессия из контекста; если Sessions не стоял в цепочке,
// заводится новая анонимная.
func currentSession(m *session.Manager, r *http.Request) (*session.Session, error) {
	if sess, ok := middleware.SessionFrom(r.Context()); ok {
		return sess, nil
	}
	return m.Store().New()
}
