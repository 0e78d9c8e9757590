package session

import (
	"context"
	"ecowsco/internal/utils"
	"errors"
	"net/http"
)

const CookieName = "ecowsco.sid"

// Manager связывает Store с HTTP: подписанный cookie <-> серверная сессия.
type Manager struct {
	store  *Store
	secret string
	secure bool
}

func NewManager(store *Store, secret string, secure bool) *Manager {
	return &Manager{store: store, secret: secret, secure: secure}
}

func (m *Manager) Store() *Store { return m.store }

// Load достаёт сессию по cookie. Нет cookie, подпись неверна или сессия
// истекла: возвращается новая пустая сессия (в Redis она появится только
// после Commit). Ошибка только при недоступности хранилища.
func (m *Manager) Load(r *http.Request) (*Session, error) {
	if c, err := r.Cookie(CookieName); err == nil {
		if id, err := utils.ParseSessionID(m.secret, c.Value); err == nil {
			sess, err := m.store.Get(r.Context(), id)
			if err == nil {
				return sess, nil
			}
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
		}
	}
	return m.store.New()
}

// Commit сохраняет сессию и выставляет cookie.
func (m *Manager) Commit(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	if err := m.store.Save(ctx, sess); err != nil {
		return err
	}
	signed, err := utils.SignSessionID(m.secret, sess.ID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.store.TTL().Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
