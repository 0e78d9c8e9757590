package routes

import (
	"context"
	"ecowsco/internal/handlers"
	"ecowsco/internal/services"
	"ecowsco/internal/session"
	"ecowsco/internal/views"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t      *testing.T
	router *mux.Router
	db     *memStore
	mail   *outbox
	health map[string]func(context.Context) error
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := session.NewStore(rdb, "sess", time.Hour)
	manager := session.NewManager(store, "test-secret", false)

	db := newMemStore()
	mail := &outbox{}
	auth := services.NewAuthService(db, 4)
	sessionService := services.NewSessionService(store, auth, "operator", "op-secret")
	passwords := services.NewPasswordService(resetRepo{db}, auth, mail, time.Hour)
	products := services.NewProductService(db)
	admin := services.NewAdminService(db, db)

	renderer, err := views.New()
	require.NoError(t, err)

	h := &harness{t: t, db: db, mail: mail, health: map[string]func(context.Context) error{
		"postgres": func(context.Context) error { return nil },
	}}

	h.router = mux.NewRouter()
	InitRoutes(h.router, manager, sessionService, Handlers{
		Home:     handlers.NewHomeHandler(renderer, h.health),
		Auth:     handlers.NewAuthHandler(auth, sessionService, manager, renderer),
		Store:    handlers.NewStoreHandler(auth, products, renderer),
		Password: handlers.NewPasswordHandler(passwords, renderer, "https://shop.example"),
		Admin:    handlers.NewAdminHandler(admin, sessionService, manager, renderer),
		Logs:     handlers.NewAdminLogsHandler(t.TempDir()),
	})
	return h
}

func (h *harness) do(method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	h.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func (h *harness) register(email, store, password string) *httptest.ResponseRecorder {
	return h.do(http.MethodPost, "/register", url.Values{
		"name":       {"Vendor"},
		"email":      {email},
		"password":   {password},
		"store_name": {store},
		"whatsapp":   {"+100"},
	}, nil)
}

func (h *harness) login(email, password string) *http.Cookie {
	h.t.Helper()
	rec := h.do(http.MethodPost, "/login", url.Values{"email": {email}, "password": {password}}, nil)
	require.Equal(h.t, http.StatusFound, rec.Code, rec.Body.String())
	require.Equal(h.t, "/dashboard", rec.Header().Get("Location"))
	c := sessionCookie(rec)
	require.NotNil(h.t, c)
	return c
}

func (h *harness) adminLogin() *http.Cookie {
	h.t.Helper()
	rec := h.do(http.MethodPost, "/admin-login", url.Values{"username": {"operator"}, "password": {"op-secret"}}, nil)
	require.Equal(h.t, http.StatusFound, rec.Code)
	c := sessionCookie(rec)
	require.NotNil(h.t, c)
	return c
}

func TestHome(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRegisterAndLogin(t *testing.T) {
	h := newHarness(t)

	rec := h.register("ann@x.com", "Ann's Shop", "pw1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = h.register("other@x.com", "anns shop", "pw2")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error: Email or store name may already exist.")

	rec = h.do(http.MethodPost, "/login", url.Values{"email": {"ann@x.com"}, "password": {"nope"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.Nil(t, sessionCookie(rec))

	cookie := h.login("ann@x.com", "pw1")
	rec = h.do(http.MethodGet, "/dashboard", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "annsshop")
}

func TestDashboard_RequiresVendor(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/dashboard", nil, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = h.do(http.MethodGet, "/dashboard", nil, h.adminLogin())
	assert.Equal(t, http.StatusFound, rec.Code, "admin is not a vendor")

	rec = h.do(http.MethodPost, "/add-product", url.Values{"name": {"x"}, "price": {"1"}}, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Zero(t, len(h.db.products))
}

func TestLoginRotatesSession(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, http.StatusFound, h.register("r@x.com", "rot", "pw").Code)

	first := h.login("r@x.com", "pw")

	rec := h.do(http.MethodPost, "/login", url.Values{"email": {"r@x.com"}, "password": {"pw"}}, first)
	require.Equal(t, http.StatusFound, rec.Code)
	second := sessionCookie(rec)
	require.NotNil(t, second)
	assert.NotEqual(t, first.Value, second.Value)

	// старый id больше не действует
	rec = h.do(http.MethodGet, "/dashboard", nil, first)
	assert.Equal(t, http.StatusFound, rec.Code)
	rec = h.do(http.MethodGet, "/dashboard", nil, second)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, http.StatusFound, h.register("l@x.com", "leave", "pw").Code)
	cookie := h.login("l@x.com", "pw")

	rec := h.do(http.MethodGet, "/logout", nil, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)

	rec = h.do(http.MethodGet, "/dashboard", nil, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestProductsAndStorePage(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, http.StatusFound, h.register("p@x.com", "My Shop!", "pw").Code)
	cookie := h.login("p@x.com", "pw")

	rec := h.do(http.MethodPost, "/add-product", url.Values{
		"name": {"Clay mug"}, "price": {"12.5"}, "image_url": {"https://img/mug.png"},
	}, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = h.do(http.MethodPost, "/add-product", url.Values{"name": {"Bad"}, "price": {"-3"}}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(http.MethodGet, "/dashboard", nil, cookie)
	assert.Contains(t, rec.Body.String(), "Clay mug")
	assert.Contains(t, rec.Body.String(), "12.50")

	for _, path := range []string{"/store/myshop", "/store/MyShop"} {
		rec = h.do(http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Clay mug", path)
	}

	rec = h.do(http.MethodGet, "/store/nobody", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Store not found")
}

func TestCheckStore(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, http.StatusFound, h.register("c@x.com", "taken", "pw").Code)

	check := func(name string) bool {
		rec := h.do(http.MethodGet, "/check-store?store_name="+url.QueryEscape(name), nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Available bool `json:"available"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		return body.Available
	}

	assert.False(t, check("TAKEN"))
	assert.True(t, check("free-name"))
	assert.False(t, check("!!!"))
}

var resetLink = regexp.MustCompile(`https://shop\.example/reset-password/([0-9a-f]{64})`)

func TestPasswordResetFlow(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, http.StatusFound, h.register("reset@x.com", "resetshop", "old").Code)

	rec := h.do(http.MethodPost, "/reset-request", url.Values{"email": {"reset@x.com"}}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reset link sent! Check your email.")

	m := resetLink.FindStringSubmatch(h.mail.last())
	require.Len(t, m, 2, "reset email must contain the link")
	path := "/reset-password/" + m[1]

	rec = h.do(http.MethodGet, path, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="`+path+`"`)

	rec = h.do(http.MethodPost, path, url.Values{"password": {"new"}}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password reset successful! You can now login.")

	rec = h.do(http.MethodPost, path, url.Values{"password": {"again"}}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")

	rec = h.do(http.MethodGet, path, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(http.MethodPost, "/login", url.Values{"email": {"reset@x.com"}, "password": {"old"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	h.login("reset@x.com", "new")
}

func TestPasswordReset_UnknownEmailLooksTheSame(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/reset-request", url.Values{"email": {"ghost@x.com"}}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reset link sent! Check your email.")

	rec = h.do(http.MethodGet, "/reset-password/deadbeef", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAdmin(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, http.StatusFound, h.register("a@x.com", "alpha", "pw").Code)
	require.Equal(t, http.StatusFound, h.register("b@x.com", "beta", "pw").Code)
	vendor := h.login("b@x.com", "pw")
	require.Equal(t, http.StatusFound, h.do(http.MethodPost, "/add-product", url.Values{"name": {"B1"}, "price": {"1"}}, vendor).Code)

	rec := h.do(http.MethodGet, "/admin", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin login")

	rec = h.do(http.MethodGet, "/admin", nil, vendor)
	assert.Contains(t, rec.Body.String(), "Admin login", "vendor is not an admin")

	rec = h.do(http.MethodPost, "/admin-login", url.Values{"username": {"operator"}, "password": {"wrong"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid admin credentials")

	admin := h.adminLogin()
	rec = h.do(http.MethodGet, "/admin", nil, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total stores: 2")

	rec = h.do(http.MethodGet, "/admin/stats", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Data struct {
			TotalStores   int `json:"total_stores"`
			TotalProducts int `json:"total_products"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 2, stats.Data.TotalStores)
	assert.Equal(t, 1, stats.Data.TotalProducts)

	bob, err := h.db.GetByEmail(context.Background(), "b@x.com")
	require.NoError(t, err)

	rec = h.do(http.MethodPost, "/admin/delete-store/"+itoa(bob.ID), nil, vendor)
	assert.Contains(t, rec.Body.String(), "Admin login", "vendor cannot delete stores")

	rec = h.do(http.MethodPost, "/admin/delete-store/"+itoa(bob.ID), nil, admin)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	count, _ := h.db.CountProducts(context.Background())
	assert.Zero(t, count)

	rec = h.do(http.MethodPost, "/admin/delete-store/"+itoa(bob.ID), nil, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// сессия удалённого продавца больше не пускает в кабинет
	rec = h.do(http.MethodGet, "/dashboard", nil, vendor)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestAdminAPI_RequiresAdmin(t *testing.T) {
	h := newHarness(t)
	for _, path := range []string{"/admin/stats", "/admin/logs"} {
		rec := h.do(http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := h.do(http.MethodGet, "/admin/logs", nil, h.adminLogin())
	assert.Equal(t, http.StatusNotFound, rec.Code, "empty log dir")
}

func TestHealthz(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	h.health["postgres"] = func(context.Context) error { return errors.New("down") }
	rec = h.do(http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"postgres":"down"`)
}

func TestStatic(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodGet, "/static/script.js", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func itoa(i int) string { return strconv.Itoa(i) }
