package smtp

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/shatalito/pos-api/internal/application/notification"
	"github.com/shatalito/pos-api/pkg/config"
)

var _ notification.Mailer = (*Mailer)(nil)

// Mailer implementación SMTP del puerto notification.Mailer.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer construye el adaptador de correo saliente.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send envía un correo de texto plano.
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", to, err)
	}
	return nil
}
