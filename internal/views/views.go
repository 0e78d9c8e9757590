package views

import (
	"bytes"
	"ecowsco/internal/logger"
	"ecowsco/internal/models"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Страницы, которые умеет рендерить Renderer.
const (
	PageIndex        = "index"
	PageRegister     = "register"
	PageLogin        = "login"
	PageDashboard    = "dashboard"
	PageAddProduct   = "add_product"
	PageStore        = "store"
	PageResetRequest = "reset_request"
	PageResetForm    = "reset_form"
	PageAdmin        = "admin"
	PageMessage      = "message"
)

var pages = []string{
	PageIndex, PageRegister, PageLogin, PageDashboard, PageAddProduct,
	PageStore, PageResetRequest, PageResetForm, PageAdmin, PageMessage,
}

type DashboardData struct {
	Vendor   *models.Vendor
	Products []*models.Product
}

type StoreData struct {
	Vendor   *models.Vendor
	Products []*models.Product
}

type ResetFormData struct {
	Token string
}

type AdminData struct {
	Admin    bool
	Overview *models.AdminOverview
}

type MessageData struct {
	Message string
}

type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render пишет страницу целиком; при ошибке шаблона клиент получает 500,
// а не обрезанный HTML.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := r.pages[page]
	if !ok {
		logger.Log.Error("Unknown page", zap.String("page", page))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		logger.Log.Error("Template render failed", zap.String("page", page), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (r *Renderer) Message(w http.ResponseWriter, status int, msg string) {
	r.Render(w, status, PageMessage, MessageData{Message: msg})
}

// Static раздаёт встроенные ассеты под /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
