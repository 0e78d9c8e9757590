package services

import (
	"context"
	"ecowsco/internal/logger"
	"ecowsco/internal/models"
	"ecowsco/internal/repository"
	"ecowsco/internal/utils"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// AuthService: хранилище учётных данных продавцов.
type AuthService struct {
	repo       VendorRepo
	bcryptCost int

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(repo VendorRepo, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = utils.DefaultBcryptCost
	}
	return &AuthService{repo: repo, bcryptCost: bcryptCost}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// RegisterVendor нормализует store_name, хеширует пароль и создаёт продавца.
// Дубликат email или store_name -> ErrConflict (решает уникальный индекс БД).
func (s *AuthService) RegisterVendor(ctx context.Context, req *models.RegisterVendorRequest) (int, error) {
	storeName := utils.NormalizeStoreName(req.StoreName)
	logger.Log.Info("Register vendor (service)", zap.String("store_name", storeName))

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return 0, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if storeName == "" {
		return 0, fmt.Errorf("%w: store name must contain letters, digits, '-' or '_'", ErrValidation)
	}

	hashed, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		logger.Log.Error("Hash password failed", zap.Error(err))
		return 0, err
	}

	v := &models.Vendor{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hashed,
		StoreName:    storeName,
		Contact:      optional(req.Contact),
		Description:  optional(req.Description),
	}

	if err := s.repo.CreateVendor(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			logger.Log.Warn("Vendor already exists (service)", zap.String("store_name", storeName))
			return 0, ErrConflict
		}
		logger.Log.Error("Create vendor failed (service)", zap.Error(err))
		return 0, storeErr(err)
	}

	logger.Log.Info("Vendor registered (service)", zap.Int("vendor_id", v.ID), zap.String("store_name", storeName))
	return v.ID, nil
}

// VerifyVendor проверяет email+пароль. Для несуществующего email всё равно
// выполняется сравнение bcrypt с фиктивным хешем, чтобы время ответа не
// выдавало наличие адреса.
func (s *AuthService) VerifyVendor(ctx context.Context, email, password string) (*models.Vendor, error) {
	v, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Log.Error("Get vendor by email failed (service)", zap.Error(err))
			return nil, storeErr(err)
		}
		utils.CheckPasswordHash(password, s.fakeHash())
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, v.PasswordHash) {
		logger.Log.Warn("Invalid vendor password (service)", zap.Int("vendor_id", v.ID))
		return nil, ErrInvalidCredentials
	}
	return v, nil
}

func (s *AuthService) fakeHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = utils.HashPassword("ecowsco-timing-equalizer", s.bcryptCost)
	})
	return s.dummyHash
}

func (s *AuthService) UpdatePassword(ctx context.Context, email, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	hashed, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, email, hashed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeErr(err)
	}
	return nil
}

func (s *AuthService) LookupByStoreName(ctx context.Context, name string) (*models.Vendor, error) {
	name = utils.NormalizeStoreName(name)
	if name == "" {
		return nil, ErrNotFound
	}
	return s.lookup(s.repo.GetByStoreName(ctx, name))
}

func (s *AuthService) LookupByID(ctx context.Context, id int) (*models.Vendor, error) {
	return s.lookup(s.repo.GetByID(ctx, id))
}

func (s *AuthService) lookup(v *models.Vendor, err error) (*models.Vendor, error) {
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(err)
	}
	return v, nil
}

// IsStoreNameAvailable: для AJAX-проверки при регистрации.
func (s *AuthService) IsStoreNameAvailable(ctx context.Context, raw string) (bool, error) {
	name := utils.NormalizeStoreName(raw)
	if name == "" {
		return false, nil
	}
	taken, err := s.repo.IsStoreNameTaken(ctx, name)
	if err != nil {
		return false, storeErr(err)
	}
	return !taken, nil
}
