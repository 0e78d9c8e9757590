package session

import (
	"context"
	"crypto/rand"
	"ecowsco/internal/models"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrNotFound         = errors.New("session not found")
	ErrRedisUnavailable = errors.New("session store unavailable")
)

const idBytes = 32

// Session: серверное состояние клиента. В cookie уходит только ID.
type Session struct {
	ID        string           `json:"-"`
	Principal models.Principal `json:"principal"`
	CreatedAt int64            `json:"created_at"`
}

// Store хранит сессии в Redis под ключом <prefix>:<id> со скользящим TTL.
type Store struct {
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewStore(redisClient redis.UniversalClient, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = "sess"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{redis: redisClient, prefix: prefix, ttl: ttl}
}

func (s *Store) key(id string) string {
	return s.prefix + ":" + id
}

func (s *Store) TTL() time.Duration { return s.ttl }

func newID() (string, error) {
	raw := make([]byte, idBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// New возвращает пустую (анонимную) сессию, ещё не сохранённую в Redis.
func (s *Store) New() (*Session, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	return &Session{ID: id, Principal: models.Anonymous(), CreatedAt: time.Now().Unix()}, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.redis.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// битый blob считаем отсутствующей сессией
		_ = s.redis.Del(ctx, s.key(id)).Err()
		return nil, ErrNotFound
	}
	sess.ID = id

	// скользящий idle-таймаут
	if err := s.redis.Expire(ctx, s.key(id), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return &sess, nil
}

func (s *Store) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, s.key(sess.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Rotate переносит сессию под новый ID (защита от фиксации сессии при логине).
// Старый ключ удаляется.
func (s *Store) Rotate(ctx context.Context, sess *Session) error {
	oldID := sess.ID
	id, err := newID()
	if err != nil {
		return err
	}
	sess.ID = id
	if err := s.Save(ctx, sess); err != nil {
		sess.ID = oldID
		return err
	}
	if oldID != "" {
		if err := s.redis.Del(ctx, s.key(oldID)).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
	}
	return nil
}

// Destroy удаляет сессию. Идемпотентно: отсутствующая сессия не ошибка.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
