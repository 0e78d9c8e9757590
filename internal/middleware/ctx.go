package middleware

import (
	"context"
	"ecowsco/internal/session"
)

type ctxKey string

const ContextSession ctxKey = "session"

func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, ContextSession, sess)
}

// SessionFrom возвращает сессию, загруженную middleware Sessions.
func SessionFrom(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(ContextSession).(*session.Session)
	return sess, ok && sess != nil
}
