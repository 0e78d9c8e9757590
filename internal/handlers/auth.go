package handlers

import (
	"ecowsco/internal/logger"
	"ecowsco/internal/models"
	"ecowsco/internal/services"
	"ecowsco/internal/session"
	"ecowsco/internal/utils"
	helpers "ecowsco/internal/utils/helpres"
	"ecowsco/internal/views"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService    *services.AuthService
	sessionService *services.SessionService
	sessions       *session.Manager
	views          *views.Renderer
}

func NewAuthHandler(authService *services.AuthService, sessionService *services.SessionService, sessions *session.Manager, v *views.Renderer) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionService: sessionService,
		sessions:       sessions,
		views:          v,
	}
}

type storeAvailability struct {
	Available bool `json:"available"`
}

// CheckStore godoc
// @Summary Проверка доступности имени магазина
// @Description Имя нормализуется так же, как при регистрации.
// @Tags auth
// @Produce json
// @Param store_name query string true "Имя магазина"
// @Success 200 {object} storeAvailability
// @Failure 503 {string} string "Хранилище недоступно"
// @Router /check-store [get]
func (h *AuthHandler) CheckStore(w http.ResponseWriter, r *http.Request) {
	available, err := h.authService.IsStoreNameAvailable(r.Context(), r.URL.Query().Get("store_name"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("Check store name failed", zap.Error(err))
		e := mapError(err)
		helpers.Error(w, e.Status, e.Message)
		return
	}
	helpers.Raw(w, http.StatusOK, storeAvailability{Available: available})
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.PageRegister, nil)
}

// Register godoc
// @Summary Регистрация продавца
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Имя"
// @Param email formData string true "Email"
// @Param password formData string true "Пароль"
// @Param store_name formData string true "Имя магазина"
// @Param whatsapp formData string false "WhatsApp"
// @Param description formData string false "Описание"
// @Success 302 {string} string "Редирект на /login"
// @Failure 409 {string} string "Email или имя магазина заняты"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	if err := r.ParseForm(); err != nil {
		h.views.Message(w, http.StatusBadRequest, "Invalid form")
		return
	}

	req := &models.RegisterVendorRequest{
		Name:        r.PostFormValue("name"),
		Email:       strings.TrimSpace(r.PostFormValue("email")),
		Password:    r.PostFormValue("password"),
		StoreName:   r.PostFormValue("store_name"),
		Contact:     r.PostFormValue("whatsapp"),
		Description: r.PostFormValue("description"),
	}

	id, err := h.authService.RegisterVendor(r.Context(), req)
	if err != nil {
		log.Warn("Register failed", zap.String("email", utils.MaskEmail(req.Email)), zap.Error(err))
		e := mapError(err)
		h.views.Message(w, e.Status, e.Message)
		return
	}

	log.Info("Vendor registered", zap.Int("vendor_id", id))
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.PageLogin, nil)
}

// Login godoc
// @Summary Вход продавца
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param email formData string true "Email"
// @Param password formData string true "Пароль"
// @Success 302 {string} string "Редирект на /dashboard"
// @Failure 401 {string} string "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	if err := r.ParseForm(); err != nil {
		h.views.Message(w, http.StatusBadRequest, "Invalid form")
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))

	vendor, err := h.authService.VerifyVendor(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		log.Warn("Login failed", zap.String("email", utils.MaskEmail(email)), zap.Error(err))
		e := mapError(err)
		h.views.Message(w, e.Status, e.Message)
		return
	}

	sess, err := currentSession(h.sessions, r)
	if err == nil {
		err = h.sessionService.EstablishVendorSession(r.Context(), sess, vendor)
	}
	if err == nil {
		err = h.sessions.Commit(r.Context(), w, sess)
	}
	if err != nil {
		log.Error("Login: session failed", zap.Int("vendor_id", vendor.ID), zap.Error(err))
		h.views.Message(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
		return
	}

	log.Info("Vendor logged in", zap.Int("vendor_id", vendor.ID))
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout godoc
// @Summary Выход
// @Tags auth
// @Success 302 {string} string "Редирект на /login"
// @Router /logout [get]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(h.sessions, r)
	if err == nil {
		err = h.sessionService.Terminate(r.Context(), sess)
	}
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		logger.WithCtx(r.Context()).Error("Logout failed", zap.Error(err))
		h.views.Message(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
		return
	}

	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
