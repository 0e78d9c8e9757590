package services

import (
	"context"
	"ecowsco/internal/logger"
	"ecowsco/internal/models"
	"ecowsco/internal/repository"
	"errors"

	"go.uber.org/zap"
)

type AdminService struct {
	vendors  VendorRepo
	products ProductRepo
}

func NewAdminService(vendors VendorRepo, products ProductRepo) *AdminService {
	return &AdminService{vendors: vendors, products: products}
}

// Overview: все магазины (новые сверху), все товары и счётчики.
func (s *AdminService) Overview(ctx context.Context) (*models.AdminOverview, error) {
	stores, err := s.vendors.ListVendors(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return &models.AdminOverview{
		Stats: models.AdminStats{
			TotalStores:   len(stores),
			TotalProducts: len(products),
		},
		Stores:   stores,
		Products: products,
	}, nil
}

func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	stores, err := s.vendors.CountVendors(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	products, err := s.products.CountProducts(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return &models.AdminStats{TotalStores: stores, TotalProducts: products}, nil
}

// DeleteStore удаляет продавца; его товары удаляет каскад в БД.
func (s *AdminService) DeleteStore(ctx context.Context, vendorID int) error {
	if err := s.vendors.DeleteVendor(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeErr(err)
	}
	logger.Log.Info("Store deleted (service)", zap.Int("vendor_id", vendorID))
	return nil
}
