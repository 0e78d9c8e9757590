package services

import (
	"context"
	"ecowsco/internal/models"
	"time"
)

type VendorRepo interface {
	CreateVendor(ctx context.Context, v *models.Vendor) error
	GetByEmail(ctx context.Context, email string) (*models.Vendor, error)
	GetByID(ctx context.Context, id int) (*models.Vendor, error)
	GetByStoreName(ctx context.Context, storeName string) (*models.Vendor, error)
	IsStoreNameTaken(ctx context.Context, storeName string) (bool, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	ListVendors(ctx context.Context) ([]*models.Vendor, error)
	CountVendors(ctx context.Context) (int, error)
	DeleteVendor(ctx context.Context, id int) error
}

type ProductRepo interface {
	CreateProduct(ctx context.Context, p *models.Product) error
	ListByVendor(ctx context.Context, vendorID int) ([]*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	CountProducts(ctx context.Context) (int, error)
}

type PasswordResetRepo interface {
	Create(ctx context.Context, email, token string, expiresAt time.Time) error
	GetValid(ctx context.Context, token string, now time.Time) (*models.PasswordResetToken, error)
	Consume(ctx context.Context, token string, now time.Time) (*models.PasswordResetToken, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
