package routes

import (
	"context"
	"ecowsco/internal/models"
	"ecowsco/internal/repository"
	"sort"
	"sync"
	"time"
)

// memStore: in-memory vendors/products/password_resets с теми же
// ограничениями, что и схема Postgres.
type memStore struct {
	mu       sync.Mutex
	nextID   int
	vendors  map[int]*models.Vendor
	products map[int]*models.Product
	resets   []models.PasswordResetToken
}

func newMemStore() *memStore {
	return &memStore{vendors: map[int]*models.Vendor{}, products: map[int]*models.Product{}}
}

func (m *memStore) CreateVendor(_ context.Context, v *models.Vendor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.vendors {
		if existing.Email == v.Email || existing.StoreName == v.StoreName {
			return repository.ErrDuplicate
		}
	}
	m.nextID++
	v.ID = m.nextID
	cp := *v
	m.vendors[v.ID] = &cp
	return nil
}

func (m *memStore) find(pred func(*models.Vendor) bool) (*models.Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.vendors {
		if pred(v) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*models.Vendor, error) {
	return m.find(func(v *models.Vendor) bool { return v.Email == email })
}

func (m *memStore) GetByID(_ context.Context, id int) (*models.Vendor, error) {
	return m.find(func(v *models.Vendor) bool { return v.ID == id })
}

func (m *memStore) GetByStoreName(_ context.Context, name string) (*models.Vendor, error) {
	return m.find(func(v *models.Vendor) bool { return v.StoreName == name })
}

func (m *memStore) IsStoreNameTaken(ctx context.Context, name string) (bool, error) {
	_, err := m.GetByStoreName(ctx, name)
	return err == nil, nil
}

func (m *memStore) UpdatePassword(_ context.Context, email, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.vendors {
		if v.Email == email {
			v.PasswordHash = hash
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memStore) ListVendors(_ context.Context) ([]*models.Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Vendor, 0, len(m.vendors))
	for _, v := range m.vendors {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) CountVendors(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.vendors), nil
}

func (m *memStore) DeleteVendor(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vendors[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.vendors, id)
	for pid, p := range m.products {
		if p.VendorID == id {
			delete(m.products, pid)
		}
	}
	return nil
}

func (m *memStore) CreateProduct(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memStore) ListByVendor(ctx context.Context, vendorID int) ([]*models.Product, error) {
	all, _ := m.ListProducts(ctx)
	var out []*models.Product
	for _, p := range all {
		if p.VendorID == vendorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) ListProducts(_ context.Context) ([]*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Product, 0, len(m.products))
	for _, p := range m.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CountProducts(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products), nil
}

// resetRepo реализует PasswordResetRepo поверх того же memStore.
type resetRepo struct{ *memStore }

func (r resetRepo) Create(_ context.Context, email, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets = append(r.resets, models.PasswordResetToken{Email: email, Token: token, ExpiresAt: expiresAt})
	return nil
}

func (r resetRepo) index(token string, now time.Time) int {
	for i, row := range r.resets {
		if row.Token == token && !now.After(row.ExpiresAt) {
			return i
		}
	}
	return -1
}

func (r resetRepo) GetValid(_ context.Context, token string, now time.Time) (*models.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(token, now)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	row := r.resets[i]
	return &row, nil
}

func (r resetRepo) Consume(_ context.Context, token string, now time.Time) (*models.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(token, now)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	row := r.resets[i]
	r.resets = append(r.resets[:i], r.resets[i+1:]...)
	return &row, nil
}

func (r resetRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.resets[:0]
	var n int64
	for _, row := range r.resets {
		if row.ExpiresAt.Before(now) {
			n++
			continue
		}
		kept = append(kept, row)
	}
	r.resets = kept
	return n, nil
}

type outbox struct {
	mu   sync.Mutex
	sent []string
}

func (o *outbox) Send(_ context.Context, _, _, body string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, body)
	return nil
}

func (o *outbox) last() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.sent) == 0 {
		return ""
	}
	return o.sent[len(o.sent)-1]
}
