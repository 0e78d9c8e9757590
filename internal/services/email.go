package services

import (
	"bytes"
	"context"
	"ecowsco/internal/config"
	"ecowsco/internal/logger"
	"ecowsco/internal/utils"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// NewEmailSender выбирает провайдера по EMAIL_PROVIDER.
func NewEmailSender(cfg *config.Config) EmailSender {
	switch cfg.EmailProvider {
	case "emailjs":
		return NewEmailJSService(cfg)
	case "log":
		return LogEmailSender{}
	default:
		return NewEmailService(cfg)
	}
}

// EmailService: отправка через SMTP.
type EmailService struct {
	auth smtp.Auth
	from string
	host string
	port string
}

func NewEmailService(cfg *config.Config) *EmailService {
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	from := cfg.MailFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &EmailService{
		auth: auth,
		from: from,
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
	}
}

func (s *EmailService) Send(_ context.Context, to, subject, htmlBody string) error {
	msg := buildHTMLMessage(s.from, to, subject, htmlBody)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, s.auth, s.from, []string{to}, msg)
}

func buildHTMLMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

const emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSService: отправка через REST API EmailJS (шаблон с параметрами
// to_email, subject, message).
type EmailJSService struct {
	client     *http.Client
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
	privateKey string
}

func NewEmailJSService(cfg *config.Config) *EmailJSService {
	return &EmailJSService{
		client:     &http.Client{Timeout: 10 * time.Second},
		endpoint:   emailJSEndpoint,
		serviceID:  cfg.EmailJSServiceID,
		templateID: cfg.EmailJSTemplateID,
		publicKey:  cfg.EmailJSPublicKey,
		privateKey: cfg.EmailJSPrivateKey,
	}
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (s *EmailJSService) Send(ctx context.Context, to, subject, htmlBody string) error {
	payload, err := json.Marshal(emailJSRequest{
		ServiceID:   s.serviceID,
		TemplateID:  s.templateID,
		UserID:      s.publicKey,
		AccessToken: s.privateKey,
		TemplateParams: map[string]string{
			"to_email": to,
			"subject":  subject,
			"message":  htmlBody,
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

// LogEmailSender ничего не отправляет, только пишет в лог (dev).
type LogEmailSender struct{}

func (LogEmailSender) Send(_ context.Context, to, subject, _ string) error {
	logger.Log.Info("Email suppressed (EMAIL_PROVIDER=log)", zap.String("to", utils.MaskEmail(to)), zap.String("subject", subject))
	return nil
}
