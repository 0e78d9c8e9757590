package services

import (
	"context"
	"ecowsco/internal/logger"
	"ecowsco/internal/models"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxPrice: предел NUMERIC(12,2).
var maxPrice = decimal.RequireFromString("9999999999.99")

type ProductService struct {
	repo ProductRepo
}

func NewProductService(repo ProductRepo) *ProductService {
	return &ProductService{repo: repo}
}

func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price must be a number", ErrValidation)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	price = price.Round(2)
	if price.GreaterThan(maxPrice) {
		return decimal.Zero, fmt.Errorf("%w: price is too large", ErrValidation)
	}
	return price, nil
}

func (s *ProductService) AddProduct(ctx context.Context, vendorID int, req *models.CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	price, err := ParsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	p := &models.Product{
		Name:        name,
		Price:       price,
		Image:       optional(req.ImageURL),
		Description: optional(req.Description),
		VendorID:    vendorID,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		logger.Log.Error("Add product failed (service)", zap.Int("vendor_id", vendorID), zap.Error(err))
		return nil, storeErr(err)
	}
	logger.Log.Info("Product added (service)", zap.Int("vendor_id", vendorID), zap.Int("product_id", p.ID))
	return p, nil
}

func (s *ProductService) ListByVendor(ctx context.Context, vendorID int) ([]*models.Product, error) {
	products, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, storeErr(err)
	}
	return products, nil
}
