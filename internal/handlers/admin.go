package handlers

import (
	"ecowsco/internal/logger"
	"ecowsco/internal/services"
	"ecowsco/internal/session"
	helpers "ecowsco/internal/utils/helpres"
	"ecowsco/internal/views"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminService   *services.AdminService
	sessionService *services.SessionService
	sessions       *session.Manager
	views          *views.Renderer
}

func NewAdminHandler(adminService *services.AdminService, sessionService *services.SessionService, sessions *session.Manager, v *views.Renderer) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		sessionService: sessionService,
		sessions:       sessions,
		views:          v,
	}
}

// Prompt: форма входа админа; отдаётся вместо /admin без админской сессии.
func (h *AdminHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.PageAdmin, views.AdminData{Admin: false})
}

// Unauthorized: ответ для JSON-эндпоинтов админки без админской сессии.
func (h *AdminHandler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	helpers.Error(w, http.StatusUnauthorized, "admin session required")
}

// Dashboard godoc
// @Summary Панель администратора
// @Description Без админской сессии отдаёт форму входа.
// @Tags admin
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /admin [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	overview, err := h.adminService.Overview(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Admin overview failed", zap.Error(err))
		e := mapError(err)
		h.views.Message(w, e.Status, e.Message)
		return
	}
	h.views.Render(w, http.StatusOK, views.PageAdmin, views.AdminData{Admin: true, Overview: overview})
}

// Login godoc
// @Summary Вход администратора
// @Tags admin
// @Accept x-www-form-urlencoded
// @Param username formData string true "Логин"
// @Param password formData string true "Пароль"
// @Success 302 {string} string "Редирект на /admin"
// @Failure 401 {string} string "Invalid admin credentials"
// @Router /admin-login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	if err := r.ParseForm(); err != nil {
		h.views.Message(w, http.StatusBadRequest, "Invalid form")
		return
	}

	sess, err := currentSession(h.sessions, r)
	if err == nil {
		err = h.sessionService.EstablishAdminSession(r.Context(), sess, r.PostFormValue("username"), r.PostFormValue("password"))
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		h.views.Message(w, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}
	if err == nil {
		err = h.sessions.Commit(r.Context(), w, sess)
	}
	if err != nil {
		log.Error("Admin login: session failed", zap.Error(err))
		h.views.Message(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
		return
	}

	log.Info("Admin logged in")
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// DeleteStore godoc
// @Summary Удалить магазин вместе с товарами
// @Tags admin
// @Param id path int true "ID продавца"
// @Success 302 {string} string "Редирект на /admin"
// @Failure 404 {string} string "Store not found"
// @Router /admin/delete-store/{id} [post]
func (h *AdminHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		h.views.Message(w, http.StatusBadRequest, "Invalid store id")
		return
	}

	if err := h.adminService.DeleteStore(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.views.Message(w, http.StatusNotFound, "Store not found")
			return
		}
		log.Error("Delete store failed", zap.Int("vendor_id", id), zap.Error(err))
		h.views.Message(w, http.StatusInternalServerError, "Error deleting store")
		return
	}

	log.Info("Store deleted", zap.Int("vendor_id", id))
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// Stats godoc
// @Summary Счётчики магазинов и товаров
// @Tags admin
// @Produce json
// @Success 200 {object} models.AdminStats
// @Failure 401 {object} helpers.Response
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("Admin stats failed", zap.Error(err))
		e := mapError(err)
		helpers.Error(w, e.Status, e.Message)
		return
	}
	helpers.JSON(w, http.StatusOK, stats)
}
