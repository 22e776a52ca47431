package infra

import (
	"fmt"
	"net/smtp"

	"makarios/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending production receipts and
// low-stock alerts, optionally with a PDF attachment.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Enabled reports whether SMTP is configured at all. Workers skip sends
// (without erroring) when it is not.
func (m *Mailer) Enabled() bool { return m.host != "" }

// Send delivers a plain-text email, attaching the file at pdfPath when
// non-empty.
func (m *Mailer) Send(to, subject, body, pdfPath string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: anexar PDF: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
