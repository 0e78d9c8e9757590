package handlers

import (
	"context"
	"ecowsco/internal/logger"
	helpers "ecowsco/internal/utils/helpres"
	"ecowsco/internal/views"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HomeHandler struct {
	views  *views.Renderer
	checks map[string]func(ctx context.Context) error
}

// NewHomeHandler: checks: зависимости для /healthz (имя -> ping).
func NewHomeHandler(v *views.Renderer, checks map[string]func(ctx context.Context) error) *HomeHandler {
	return &HomeHandler{views: v, checks: checks}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.PageIndex, nil)
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Health godoc
// @Summary Проверка живости
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /healthz [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			logger.WithCtx(r.Context()).Warn("Health check failed", zap.String("check", name), zap.Error(err))
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "up"
	}

	helpers.Raw(w, status, resp)
}
