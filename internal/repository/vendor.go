package repository

import (
	"context"
	"ecowsco/internal/logger"
	"ecowsco/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type VendorRepository struct {
	db *pgxpool.Pool
}

func NewVendorRepository(db *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{db: db}
}

const vendorColumns = `id, name, email, password, store_name, whatsapp, description, created_at`

func scanVendor(row pgx.Row) (*models.Vendor, error) {
	var v models.Vendor
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Email,
		&v.PasswordHash,
		&v.StoreName,
		&v.Contact,
		&v.Description,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVendor: уникальность email и store_name проверяет сама БД,
// при конфликте возвращается ErrDuplicate.
func (r *VendorRepository) CreateVendor(ctx context.Context, v *models.Vendor) error {
	logger.Log.Info("Create vendor (repo)", zap.String("store_name", v.StoreName))
	query := `
	INSERT INTO vendors (name, email, password, store_name, whatsapp, description)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		v.Name,
		v.Email,
		v.PasswordHash,
		v.StoreName,
		v.Contact,
		v.Description,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		logger.Log.Warn("Create vendor failed (repo)", zap.String("store_name", v.StoreName), zap.Error(err))
	}
	return mapErr(err)
}

func (r *VendorRepository) GetByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	logger.Log.Debug("Get vendor by email (repo)")
	v, err := scanVendor(r.db.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE email = $1`, email))
	return v, mapErr(err)
}

func (r *VendorRepository) GetByID(ctx context.Context, id int) (*models.Vendor, error) {
	logger.Log.Debug("Get vendor by id (repo)", zap.Int("vendor_id", id))
	v, err := scanVendor(r.db.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id))
	return v, mapErr(err)
}

func (r *VendorRepository) GetByStoreName(ctx context.Context, storeName string) (*models.Vendor, error) {
	logger.Log.Debug("Get vendor by store name (repo)", zap.String("store_name", storeName))
	v, err := scanVendor(r.db.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE store_name = $1`, storeName))
	return v, mapErr(err)
}

func (r *VendorRepository) IsStoreNameTaken(ctx context.Context, storeName string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM vendors WHERE store_name = $1)`, storeName).Scan(&exists)
	if err != nil {
		logger.Log.Error("Check store name failed (repo)", zap.Error(err))
	}
	return exists, err
}

// UpdatePassword возвращает ErrNotFound, если продавца с таким email нет.
func (r *VendorRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE vendors SET password = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		logger.Log.Error("Update vendor password failed (repo)", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VendorRepository) ListVendors(ctx context.Context) ([]*models.Vendor, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vendorColumns+` FROM vendors ORDER BY id DESC`)
	if err != nil {
		logger.Log.Error("List vendors failed (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var vendors []*models.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			logger.Log.Error("Scan vendor failed (repo)", zap.Error(err))
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *VendorRepository) CountVendors(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vendors`).Scan(&n)
	return n, err
}

// DeleteVendor удаляет продавца; товары удаляются каскадом (ON DELETE CASCADE).
func (r *VendorRepository) DeleteVendor(ctx context.Context, id int) error {
	logger.Log.Info("Delete vendor (repo)", zap.Int("vendor_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Delete vendor failed (repo)", zap.Int("vendor_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
