package services

import (
	"context"
	"ecowsco/internal/logger"
	"ecowsco/internal/repository"
	"ecowsco/internal/utils"
	helpers "ecowsco/internal/utils/helpers"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultResetTokenTTL = time.Hour

type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type passwordUpdater interface {
	UpdatePassword(ctx context.Context, email, password string) error
}

// PasswordService: сброс пароля по одноразовому токену из письма.
//
// Токен: Issued -> Consumed (удалён) или Issued -> Expired (по времени,
// отдельного статуса нет).
type PasswordService struct {
	repo        PasswordResetRepo
	creds       passwordUpdater
	emailSender EmailSender
	tokenTTL    time.Duration
	now         func() time.Time
}

func NewPasswordService(repo PasswordResetRepo, creds passwordUpdater, emailSender EmailSender, tokenTTL time.Duration) *PasswordService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultResetTokenTTL
	}
	return &PasswordService{
		repo:        repo,
		creds:       creds,
		emailSender: emailSender,
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

// WithClock подменяет часы (для тестов).
func (s *PasswordService) WithClock(now func() time.Time) *PasswordService {
	s.now = now
	return s
}

// RequestReset выпускает токен и отправляет ссылку на email. Наличие продавца
// с таким email не проверяется. Ошибка доставки письма только логируется:
// клиент всегда видит одинаковый ответ.
func (s *PasswordService) RequestReset(ctx context.Context, email, baseURL string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrValidation)
	}
	logger.Log.Info("Password reset requested", zap.String("email", utils.MaskEmail(email)))

	token, err := utils.GenerateResetToken()
	if err != nil {
		logger.Log.Error("Generate reset token failed", zap.Error(err))
		return "", err
	}

	expires := s.now().Add(s.tokenTTL)
	if err := s.repo.Create(ctx, email, token, expires); err != nil {
		return "", storeErr(err)
	}

	link := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(baseURL, "/"), token)
	body := helpers.BuildPasswordResetHTML(link, s.tokenTTL)
	if err := s.emailSender.Send(ctx, email, "Ecowsco Password Reset", body); err != nil {
		logger.Log.Error("Send reset email failed",
			zap.String("email", utils.MaskEmail(email)),
			zap.Error(err),
		)
	}

	logger.Log.Info("Reset token issued",
		zap.String("email", utils.MaskEmail(email)),
		zap.Time("expires_at", expires),
	)
	return token, nil
}

// ValidateToken возвращает email владельца, если токен существует и не истёк.
func (s *PasswordService) ValidateToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	rec, err := s.repo.GetValid(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", storeErr(err)
	}
	return rec.Email, nil
}

// ConsumeToken меняет пароль по токену. Срок годности проверяется так же,
// как в ValidateToken. Токен забирается из БД атомарно до смены пароля,
// поэтому повторное использование невозможно даже при параллельных запросах;
// остальные токены этого email остаются действительными.
func (s *PasswordService) ConsumeToken(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	if token == "" {
		return ErrInvalidToken
	}

	rec, err := s.repo.Consume(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn("Invalid or expired reset token")
			return ErrInvalidToken
		}
		return storeErr(err)
	}

	if err := s.creds.UpdatePassword(ctx, rec.Email, newPassword); err != nil {
		if errors.Is(err, ErrNotFound) {
			// токен выпущен на email без продавца
			logger.Log.Warn("Reset token for unknown vendor", zap.String("email", utils.MaskEmail(rec.Email)))
			return ErrInvalidToken
		}
		logger.Log.Error("Update password by reset token failed",
			zap.String("email", utils.MaskEmail(rec.Email)),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Password reset completed", zap.String("email", utils.MaskEmail(rec.Email)))
	return nil
}

// PurgeExpired чистит истёкшие токены.
func (s *PasswordService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}
