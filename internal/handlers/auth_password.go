package handlers

import (
	"ecowsco/internal/logger"
	"ecowsco/internal/services"
	"ecowsco/internal/utils"
	"ecowsco/internal/views"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PasswordHandler struct {
	svc     *services.PasswordService
	views   *views.Renderer
	siteURL string
}

// NewPasswordHandler: siteURL это публичный адрес для ссылки в письме;
// пустой: берётся хост запроса.
func NewPasswordHandler(svc *services.PasswordService, v *views.Renderer, siteURL string) *PasswordHandler {
	return &PasswordHandler{svc: svc, views: v, siteURL: strings.TrimRight(siteURL, "/")}
}

func (h *PasswordHandler) baseURL(r *http.Request) string {
	if h.siteURL != "" {
		return h.siteURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "https" || p == "http" {
		scheme = p
	}
	return scheme + "://" + r.Host
}

func (h *PasswordHandler) ResetRequestForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.PageResetRequest, nil)
}

// ResetRequest godoc
// @Summary Запрос ссылки для сброса пароля
// @Description Ответ одинаковый вне зависимости от того, зарегистрирован ли email.
// @Tags password
// @Accept x-www-form-urlencoded
// @Produce html
// @Param email formData string true "Email продавца"
// @Success 200 {string} string "Reset link sent! Check your email."
// @Failure 400 {string} string "Ошибка валидации"
// @Router /reset-request [post]
func (h *PasswordHandler) ResetRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	if err := r.ParseForm(); err != nil {
		h.views.Message(w, http.StatusBadRequest, "Invalid form")
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))

	if _, err := h.svc.RequestReset(r.Context(), email, h.baseURL(r)); err != nil {
		log.Error("Reset request failed", zap.String("email", utils.MaskEmail(email)), zap.Error(err))
		if errors.Is(err, services.ErrValidation) {
			e := mapError(err)
			h.views.Message(w, e.Status, e.Message)
			return
		}
		h.views.Message(w, http.StatusInternalServerError, "Error sending reset link.")
		return
	}

	h.views.Message(w, http.StatusOK, "Reset link sent! Check your email.")
}

// ResetForm godoc
// @Summary Форма нового пароля
// @Tags password
// @Produce html
// @Param token path string true "Токен из письма"
// @Success 200 {string} string "HTML"
// @Failure 400 {string} string "Invalid or expired token"
// @Router /reset-password/{token} [get]
func (h *PasswordHandler) ResetForm(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if _, err := h.svc.ValidateToken(r.Context(), token); err != nil {
		if !errors.Is(err, services.ErrInvalidToken) {
			logger.WithCtx(r.Context()).Error("Validate reset token failed", zap.Error(err))
		}
		e := mapError(err)
		h.views.Message(w, e.Status, e.Message)
		return
	}

	h.views.Render(w, http.StatusOK, views.PageResetForm, views.ResetFormData{Token: token})
}

// ResetPassword godoc
// @Summary Установить новый пароль по токену
// @Tags password
// @Accept x-www-form-urlencoded
// @Produce html
// @Param token path string true "Токен из письма"
// @Param password formData string true "Новый пароль"
// @Success 200 {string} string "Password reset successful! You can now login."
// @Failure 400 {string} string "Invalid or expired token"
// @Router /reset-password/{token} [post]
func (h *PasswordHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	if err := r.ParseForm(); err != nil {
		h.views.Message(w, http.StatusBadRequest, "Invalid form")
		return
	}

	if err := h.svc.ConsumeToken(r.Context(), mux.Vars(r)["token"], r.PostFormValue("password")); err != nil {
		log.Warn("Reset password failed", zap.Error(err))
		e := mapError(err)
		if e.Status >= http.StatusInternalServerError {
			e.Message = "Error resetting password."
		}
		h.views.Message(w, e.Status, e.Message)
		return
	}

	h.views.Message(w, http.StatusOK, "Password reset successful! You can now login.")
}
