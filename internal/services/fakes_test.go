package services

import (
	"context"
	"ecowsco/internal/models"
	"ecowsco/internal/repository"
	"errors"
	"sort"
	"sync"
	"time"
)

// memDB: in-memory замена Postgres: уникальные email/store_name,
// FK products.vendor_id с ON DELETE CASCADE.
type memDB struct {
	mu       sync.Mutex
	nextID   int
	vendors  map[int]*models.Vendor
	products map[int]*models.Product
	failWith error
}

func newMemDB() *memDB {
	return &memDB{vendors: map[int]*models.Vendor{}, products: map[int]*models.Product{}}
}

func (m *memDB) CreateVendor(_ context.Context, v *models.Vendor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, existing := range m.vendors {
		if existing.Email == v.Email || existing.StoreName == v.StoreName {
			return repository.ErrDuplicate
		}
	}
	m.nextID++
	v.ID = m.nextID
	v.CreatedAt = time.Now()
	cp := *v
	m.vendors[v.ID] = &cp
	return nil
}

func (m *memDB) find(pred func(*models.Vendor) bool) (*models.Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, v := range m.vendors {
		if pred(v) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memDB) GetByEmail(_ context.Context, email string) (*models.Vendor, error) {
	return m.find(func(v *models.Vendor) bool { return v.Email == email })
}

func (m *memDB) GetByID(_ context.Context, id int) (*models.Vendor, error) {
	return m.find(func(v *models.Vendor) bool { return v.ID == id })
}

func (m *memDB) GetByStoreName(_ context.Context, storeName string) (*models.Vendor, error) {
	return m.find(func(v *models.Vendor) bool { return v.StoreName == storeName })
}

func (m *memDB) IsStoreNameTaken(ctx context.Context, storeName string) (bool, error) {
	_, err := m.GetByStoreName(ctx, storeName)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *memDB) UpdatePassword(_ context.Context, email, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.vendors {
		if v.Email == email {
			v.PasswordHash = passwordHash
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memDB) ListVendors(_ context.Context) ([]*models.Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]*models.Vendor, 0, len(m.vendors))
	for _, v := range m.vendors {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memDB) CountVendors(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.vendors), m.failWith
}

func (m *memDB) DeleteVendor(_ context.Context, id int) error {
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

func (m *memDB) CreateProduct(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vendors[p.VendorID]; !ok {
		return errors.New("violates foreign key constraint")
	}
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memDB) ListByVendor(_ context.Context, vendorID int) ([]*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Product
	for _, p := range m.products {
		if p.VendorID == vendorID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memDB) ListProducts(_ context.Context) ([]*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Product, 0, len(m.products))
	for _, p := range m.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memDB) CountProducts(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products), nil
}

// memResets: password_resets без уникального индекса на token.
type memResets struct {
	mu     sync.Mutex
	nextID int64
	rows   []models.PasswordResetToken
}

func (m *memResets) Create(_ context.Context, email, token string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.rows = append(m.rows, models.PasswordResetToken{ID: m.nextID, Email: email, Token: token, ExpiresAt: expiresAt})
	return nil
}

func (m *memResets) indexValid(token string, now time.Time) int {
	for i, r := range m.rows {
		if r.Token == token && !now.After(r.ExpiresAt) {
			return i
		}
	}
	return -1
}

func (m *memResets) GetValid(_ context.Context, token string, now time.Time) (*models.PasswordResetToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexValid(token, now)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	r := m.rows[i]
	return &r, nil
}

func (m *memResets) Consume(_ context.Context, token string, now time.Time) (*models.PasswordResetToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexValid(token, now)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	r := m.rows[i]
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return &r, nil
}

func (m *memResets) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	var n int64
	for _, r := range m.rows {
		if r.ExpiresAt.Before(now) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	m.rows = kept
	return n, nil
}

func (m *memResets) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// recordingSender запоминает письма; err имитирует сбой доставки.
type recordingSender struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

type sentEmail struct {
	To, Subject, Body string
}

func (s *recordingSender) Send(_ context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentEmail{To: to, Subject: subject, Body: body})
	return s.err
}

// fakeClock: управляемые часы.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
