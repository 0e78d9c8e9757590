package routes

import (
	"ecowsco/internal/handlers"
	"ecowsco/internal/middleware"
	"ecowsco/internal/services"
	"ecowsco/internal/session"
	"ecowsco/internal/views"
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Home     *handlers.HomeHandler
	Auth     *handlers.AuthHandler
	Store    *handlers.StoreHandler
	Password *handlers.PasswordHandler
	Admin    *handlers.AdminHandler
	Logs     *handlers.AdminLogsHandler
}

func InitRoutes(router *mux.Router, sessions *session.Manager, sessionService *services.SessionService, h Handlers) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	// без сессии: статика, healthz
	router.PathPrefix("/static/").Handler(views.Static())
	router.HandleFunc("/healthz", h.Home.Health).Methods(http.MethodGet)

	app := router.PathPrefix("").Subrouter()
	app.Use(middleware.Sessions(sessions))
	app.Use(middleware.Logging)

	// --- Публичные маршруты ---
	app.HandleFunc("/", h.Home.Home).Methods(http.MethodGet)
	app.HandleFunc("/check-store", h.Auth.CheckStore).Methods(http.MethodGet)
	app.HandleFunc("/register", h.Auth.RegisterForm).Methods(http.MethodGet)
	app.HandleFunc("/register", h.Auth.Register).Methods(http.MethodPost)
	app.HandleFunc("/login", h.Auth.LoginForm).Methods(http.MethodGet)
	app.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	app.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodGet)
	app.HandleFunc("/store/{store_name}", h.Store.StorePage).Methods(http.MethodGet)

	app.HandleFunc("/reset-request", h.Password.ResetRequestForm).Methods(http.MethodGet)
	app.HandleFunc("/reset-request", h.Password.ResetRequest).Methods(http.MethodPost)
	app.HandleFunc("/reset-password/{token}", h.Password.ResetForm).Methods(http.MethodGet)
	app.HandleFunc("/reset-password/{token}", h.Password.ResetPassword).Methods(http.MethodPost)

	app.HandleFunc("/admin-login", h.Admin.Login).Methods(http.MethodPost)

	// --- Продавец ---
	vendorOnly := middleware.RequireVendor(sessionService)
	app.Handle("/dashboard", vendorOnly(http.HandlerFunc(h.Store.Dashboard))).Methods(http.MethodGet)
	app.Handle("/add-product", vendorOnly(http.HandlerFunc(h.Store.AddProductForm))).Methods(http.MethodGet)
	app.Handle("/add-product", vendorOnly(http.HandlerFunc(h.Store.AddProduct))).Methods(http.MethodPost)

	// --- Админ ---
	adminOnly := middleware.RequireAdmin(http.HandlerFunc(h.Admin.Prompt))
	app.Handle("/admin", adminOnly(http.HandlerFunc(h.Admin.Dashboard))).Methods(http.MethodGet)
	app.Handle("/admin/delete-store/{id:[0-9]+}", adminOnly(http.HandlerFunc(h.Admin.DeleteStore))).Methods(http.MethodPost)

	adminAPI := middleware.RequireAdmin(http.HandlerFunc(h.Admin.Unauthorized))
	app.Handle("/admin/stats", adminAPI(http.HandlerFunc(h.Admin.Stats))).Methods(http.MethodGet)
	app.Handle("/admin/logs", adminAPI(http.HandlerFunc(h.Logs.GetLogs))).Methods(http.MethodGet)
}
