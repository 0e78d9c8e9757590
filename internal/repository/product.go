package repository

import (
	"context"
	"ecowsco/internal/logger"
	"ecowsco/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, price::text, image, description, vendor_id, created_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var (
		p     models.Product
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &price, &p.Image, &p.Description, &p.VendorID, &p.CreatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	p.Price = d
	return &p, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, p *models.Product) error {
	logger.Log.Info("Create product (repo)", zap.Int("vendor_id", p.VendorID), zap.String("name", p.Name))
	query := `
	INSERT INTO products (name, price, image, vendor_id, description)
	VALUES ($1, $2::numeric, $3, $4, $5)
	RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		p.Name,
		p.Price.StringFixed(2),
		p.Image,
		p.VendorID,
		p.Description,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		logger.Log.Error("Create product failed (repo)", zap.Int("vendor_id", p.VendorID), zap.Error(err))
	}
	return mapErr(err)
}

func (r *ProductRepository) ListByVendor(ctx context.Context, vendorID int) ([]*models.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE vendor_id = $1 ORDER BY id DESC`, vendorID)
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id DESC`)
}

func (r *ProductRepository) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

func (r *ProductRepository) list(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Log.Error("List products failed (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			logger.Log.Error("Scan product failed (repo)", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
