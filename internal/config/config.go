package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbURL     string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	DbConnectTimeout    time.Duration
	DbIdleTimeout       time.Duration
	DbKeepAliveInterval time.Duration
	DbAutoMigrate       bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	AdminUser string
	AdminPass string

	BcryptCost int

	Log      string
	LogLevel string
	Env      string // dev|prod

	EmailProvider string // smtp|emailjs|log
	MailFrom      string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string

	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSPrivateKey string

	SiteURL             string
	CORSOrigins         []string
	PasswordResetTTLMin string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует, чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "5000"),
		DbURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "require"),

		RedisAddr:     def(os.Getenv("REDIS_ADDR"), "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		AdminUser: os.Getenv("ADMIN_USER"),
		AdminPass: os.Getenv("ADMIN_PASS"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		EmailProvider: strings.ToLower(def(os.Getenv("EMAIL_PROVIDER"), "smtp")),
		MailFrom:      os.Getenv("MAIL_FROM"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     def(os.Getenv("SMTP_PORT"), "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		EmailJSServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSPublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		EmailJSPrivateKey: os.Getenv("EMAILJS_PRIVATE_KEY"),

		SiteURL:             strings.TrimRight(os.Getenv("SITEURL"), "/"),
		PasswordResetTTLMin: def(os.Getenv("PASSWORD_RESET_TTL_MIN"), "60"),
	}

	var err error
	if cfg.DbConnectTimeout, err = parseDuration("DB_CONNECT_TIMEOUT", def(os.Getenv("DB_CONNECT_TIMEOUT"), "10s")); err != nil {
		return nil, err
	}
	if cfg.DbIdleTimeout, err = parseDuration("DB_IDLE_TIMEOUT", def(os.Getenv("DB_IDLE_TIMEOUT"), "30s")); err != nil {
		return nil, err
	}
	if cfg.DbKeepAliveInterval, err = parseDuration("DB_KEEPALIVE_INTERVAL", def(os.Getenv("DB_KEEPALIVE_INTERVAL"), "5m")); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = parseDuration("SESSION_TTL", def(os.Getenv("SESSION_TTL"), "24h")); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = strconv.Atoi(def(os.Getenv("REDIS_DB"), "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.BcryptCost, err = strconv.Atoi(def(os.Getenv("BCRYPT_COST"), "10")); err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	cfg.DbAutoMigrate, _ = strconv.ParseBool(def(os.Getenv("DB_AUTO_MIGRATE"), "false"))
	cfg.CookieSecure, _ = strconv.ParseBool(def(os.Getenv("COOKIE_SECURE"), strconv.FormatBool(cfg.Env == "prod")))

	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, nil
}

func parseDuration(name, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	if c.DbURL == "" && (c.DbHost == "" || c.DbUser == "" || c.DbName == "") {
		return nil, fmt.Errorf("incomplete DB config (DATABASE_URL or DB_HOST/DB_USER/DB_NAME)")
	}

	if strings.TrimSpace(c.SessionSecret) == "" {
		return nil, fmt.Errorf("SESSION_SECRET is empty")
	}

	if c.AdminUser == "" || c.AdminPass == "" {
		warnings = append(warnings, "ADMIN_USER/ADMIN_PASS are not set, admin login is disabled")
	}

	switch c.EmailProvider {
	case "smtp":
		if c.SMTPHost == "" || c.SMTPUser == "" {
			warnings = append(warnings, "SMTP is not fully configured")
		}
	case "emailjs":
		if c.EmailJSServiceID == "" || c.EmailJSTemplateID == "" || c.EmailJSPublicKey == "" {
			warnings = append(warnings, "EmailJS is not fully configured")
		}
	case "log":
		warnings = append(warnings, "EMAIL_PROVIDER=log, reset emails are only logged")
	default:
		return warnings, fmt.Errorf("unknown EMAIL_PROVIDER %q", c.EmailProvider)
	}

	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return warnings, fmt.Errorf("BCRYPT_COST out of range: %d", c.BcryptCost)
	}

	if c.SiteURL == "" {
		warnings = append(warnings, "SITEURL is empty, reset links use the request host")
	}

	return warnings, nil
}

// ResetTokenTTL: время жизни токена сброса пароля.
func (c *Config) ResetTokenTTL() time.Duration {
	m, err := strconv.Atoi(c.PasswordResetTTLMin)
	if err != nil || m <= 0 {
		return time.Hour
	}
	return time.Duration(m) * time.Minute
}

// GetDSN: полная DSN (с паролем)
func (c *Config) GetDSN() string {
	if c.DbURL != "" {
		return c.DbURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe: DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	if c.DbURL != "" {
		return "<DATABASE_URL>"
	}
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
