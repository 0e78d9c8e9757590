package services

import (
	"context"
	"crypto/subtle"
	"ecowsco/internal/logger"
	"ecowsco/internal/models"
	"ecowsco/internal/session"
	"errors"

	"go.uber.org/zap"
)

type vendorLookup interface {
	LookupByID(ctx context.Context, id int) (*models.Vendor, error)
}

// SessionService выдаёт и проверяет серверные сессии продавца и админа.
type SessionService struct {
	store     *session.Store
	vendors   vendorLookup
	adminUser string
	adminPass string
}

func NewSessionService(store *session.Store, vendors vendorLookup, adminUser, adminPass string) *SessionService {
	return &SessionService{
		store:     store,
		vendors:   vendors,
		adminUser: adminUser,
		adminPass: adminPass,
	}
}

// EstablishVendorSession привязывает продавца к сессии. ID сессии меняется,
// предыдущий принципал (в том числе admin) вытесняется.
func (s *SessionService) EstablishVendorSession(ctx context.Context, sess *session.Session, v *models.Vendor) error {
	sess.Principal = models.VendorPrincipal(v.ID)
	if err := s.store.Rotate(ctx, sess); err != nil {
		logger.Log.Error("Establish vendor session failed", zap.Int("vendor_id", v.ID), zap.Error(err))
		return storeErr(err)
	}
	logger.Log.Info("Vendor session established", zap.Int("vendor_id", v.ID))
	return nil
}

// EstablishAdminSession сверяет общий операторский секрет из конфига.
// Сравнение за постоянное время; это одна общая учётка, а не
// пользовательские хеши, расширять на нескольких админов нельзя.
func (s *SessionService) EstablishAdminSession(ctx context.Context, sess *session.Session, user, pass string) error {
	if !s.adminConfigured() || !s.checkAdmin(user, pass) {
		logger.Log.Warn("Invalid admin credentials")
		return ErrInvalidCredentials
	}
	sess.Principal = models.AdminPrincipal()
	if err := s.store.Rotate(ctx, sess); err != nil {
		logger.Log.Error("Establish admin session failed", zap.Error(err))
		return storeErr(err)
	}
	logger.Log.Info("Admin session established")
	return nil
}

func (s *SessionService) adminConfigured() bool {
	return s.adminUser != "" && s.adminPass != ""
}

func (s *SessionService) checkAdmin(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.adminUser))
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(s.adminPass))
	return userOK&passOK == 1
}

// CurrentVendor возвращает продавца сессии или ErrNotFound. Если продавца
// уже удалили, сессия сбрасывается в анонимную.
func (s *SessionService) CurrentVendor(ctx context.Context, sess *session.Session) (*models.Vendor, error) {
	id, ok := sess.Principal.Vendor()
	if !ok {
		return nil, ErrNotFound
	}
	v, err := s.vendors.LookupByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			sess.Principal = models.Anonymous()
			_ = s.store.Save(ctx, sess)
		}
		return nil, err
	}
	return v, nil
}

func (s *SessionService) IsAdmin(sess *session.Session) bool {
	return sess != nil && sess.Principal.IsAdmin()
}

// Terminate удаляет сессию целиком и возвращается только после удаления,
// чтобы старый cookie не принимался после редиректа.
func (s *SessionService) Terminate(ctx context.Context, sess *session.Session) error {
	p := sess.Principal
	sess.Principal = models.Anonymous()
	if err := s.store.Destroy(ctx, sess.ID); err != nil {
		logger.Log.Error("Terminate session failed", zap.Error(err))
		return storeErr(err)
	}
	logger.Log.Info("Session terminated", zap.String("principal", p.String()))
	return nil
}
