package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"coachbooking/internal/shared/config"
	"coachbooking/pkg/logger"
)

// Mailer delivers a rendered notification to one recipient
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

const bookingEmailTemplate = `<html>
<body style="font-family: sans-serif;">
  <h2>{{.Subject}}</h2>
  {{if .Data.booking_ref}}<p>Booking reference: <strong>{{.Data.booking_ref}}</strong></p>{{end}}
  {{if .Data.seats}}<p>Seats: {{.Data.seats}}</p>{{end}}
  {{if .Data.total_price}}<p>Total: {{.Data.total_price}}</p>{{end}}
  <p>Thank you for travelling with us.</p>
</body>
</html>`

type smtpMailer struct {
	cfg  *config.EmailConfig
	addr string
}

func NewSMTPMailer(cfg *config.EmailConfig) Mailer {
	return &smtpMailer{
		cfg:  cfg,
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		m.cfg.FromEmail, to, subject)

	var auth smtp.Auth
	if m.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", m.cfg.SMTPUsername, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	}
	return smtp.SendMail(m.addr, auth, m.cfg.FromEmail, []string{to}, []byte(headers+htmlBody))
}

// logMailer is the development fallback when no SMTP host is configured
type logMailer struct {
	logger *logger.Logger
}

func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{logger: log}
}

func (m *logMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Info("email delivery skipped (no SMTP configured)", "to", to, "subject", subject)
	return nil
}

// RenderBookingEmail renders the notification into the HTML body sent
// to the customer.
func RenderBookingEmail(n *BookingNotification) (string, error) {
	tmpl, err := template.New("booking").Parse(bookingEmailTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, n); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
