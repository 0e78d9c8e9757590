package repository

import (
	"context"
	"ecowsco/internal/logger"
	"ecowsco/internal/models"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PasswordResetRepository struct {
	db *pgxpool.Pool
}

func NewPasswordResetRepository(db *pgxpool.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, email, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO password_resets (email, token, expires_at) VALUES ($1, $2, $3)`,
		email, token, expiresAt,
	)
	if err != nil {
		logger.Log.Error("Create reset token failed", zap.Error(err))
	}
	return err
}

// GetValid ищет токен, действующий на момент now (now <= expires_at).
// Уникальность token в БД не гарантируется, берём первую запись.
func (r *PasswordResetRepository) GetValid(ctx context.Context, token string, now time.Time) (*models.PasswordResetToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, token, expires_at
		FROM password_resets
		WHERE token = $1
		  AND expires_at >= $2
		ORDER BY id
		LIMIT 1
	`, token, now)

	var t models.PasswordResetToken
	if err := row.Scan(&t.ID, &t.Email, &t.Token, &t.ExpiresAt); err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

// Consume атомарно забирает действующий токен: находит и удаляет строку одним
// запросом. Из двух параллельных вызовов строку получит только один, второй
// увидит ErrNotFound.
func (r *PasswordResetRepository) Consume(ctx context.Context, token string, now time.Time) (*models.PasswordResetToken, error) {
	row := r.db.QueryRow(ctx, `
		DELETE FROM password_resets
		WHERE id = (
			SELECT id FROM password_resets
			WHERE token = $1
			  AND expires_at >= $2
			ORDER BY id
			LIMIT 1
		)
		RETURNING id, email, token, expires_at
	`, token, now)

	var t models.PasswordResetToken
	if err := row.Scan(&t.ID, &t.Email, &t.Token, &t.ExpiresAt); err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func (r *PasswordResetRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM password_resets WHERE expires_at < $1`, now)
	if err != nil {
		logger.Log.Error("Purge expired reset tokens failed", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
