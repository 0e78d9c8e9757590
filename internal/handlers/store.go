package handlers

import (
	"ecowsco/internal/logger"
	"ecowsco/internal/models"
	"ecowsco/internal/reqctx"
	"ecowsco/internal/services"
	"ecowsco/internal/views"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// StoreHandler: кабинет продавца, добавление товаров и публичная витрина.
type StoreHandler struct {
	authService    *services.AuthService
	productService *services.ProductService
	views          *views.Renderer
}

func NewStoreHandler(authService *services.AuthService, productService *services.ProductService, v *views.Renderer) *StoreHandler {
	return &StoreHandler{authService: authService, productService: productService, views: v}
}

// Dashboard godoc
// @Summary Кабинет продавца
// @Tags vendor
// @Produce html
// @Success 200 {string} string "HTML"
// @Failure 302 {string} string "Редирект на /login"
// @Router /dashboard [get]
func (h *StoreHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	vendor, ok := reqctx.GetVendor(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	products, err := h.productService.ListByVendor(r.Context(), vendor.ID)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Dashboard: list products failed", zap.Error(err))
		e := mapError(err)
		h.views.Message(w, e.Status, e.Message)
		return
	}

	h.views.Render(w, http.StatusOK, views.PageDashboard, views.DashboardData{Vendor: vendor, Products: products})
}

func (h *StoreHandler) AddProductForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.PageAddProduct, nil)
}

// AddProduct godoc
// @Summary Добавить товар
// @Tags vendor
// @Accept x-www-form-urlencoded
// @Param name formData string true "Название"
// @Param price formData string true "Цена"
// @Param image_url formData string false "URL картинки"
// @Param description formData string false "Описание"
// @Success 302 {string} string "Редирект на /dashboard"
// @Failure 400 {string} string "Ошибка валидации"
// @Router /add-product [post]
func (h *StoreHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	vendor, ok := reqctx.GetVendor(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.views.Message(w, http.StatusBadRequest, "Invalid form")
		return
	}

	p, err := h.productService.AddProduct(r.Context(), vendor.ID, &models.CreateProductRequest{
		Name:        r.PostFormValue("name"),
		Price:       r.PostFormValue("price"),
		ImageURL:    r.PostFormValue("image_url"),
		Description: r.PostFormValue("description"),
	})
	if err != nil {
		log.Warn("Add product failed", zap.Int("vendor_id", vendor.ID), zap.Error(err))
		e := mapError(err)
		if e.Status >= http.StatusInternalServerError {
			e.Message = "Error adding product"
		}
		h.views.Message(w, e.Status, e.Message)
		return
	}

	log.Info("Product added", zap.Int("vendor_id", vendor.ID), zap.Int("product_id", p.ID))
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// StorePage godoc
// @Summary Публичная страница магазина
// @Tags store
// @Produce html
// @Param store_name path string true "Имя магазина"
// @Success 200 {string} string "HTML"
// @Failure 404 {string} string "Store not found"
// @Router /store/{store_name} [get]
func (h *StoreHandler) StorePage(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	vendor, err := h.authService.LookupByStoreName(r.Context(), mux.Vars(r)["store_name"])
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.views.Message(w, http.StatusNotFound, "Store not found")
			return
		}
		log.Error("Store page: lookup failed", zap.Error(err))
		e := mapError(err)
		h.views.Message(w, e.Status, e.Message)
		return
	}

	products, err := h.productService.ListByVendor(r.Context(), vendor.ID)
	if err != nil {
		log.Error("Store page: list products failed", zap.Int("vendor_id", vendor.ID), zap.Error(err))
		e := mapError(err)
		h.views.Message(w, e.Status, e.Message)
		return
	}

	h.views.Render(w, http.StatusOK, views.PageStore, views.StoreData{Vendor: vendor, Products: products})
}
