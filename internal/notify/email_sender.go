package notify

import (
	"time"

	gomail "gopkg.in/mail.v2"

	"github.com/wonny/tickerpulse/pkg/config"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// EmailSender delivers messages via SMTP.
// ⭐ SSOT: SMTP 발송은 이 구조체에서만
type EmailSender struct {
	cfg    config.SMTPConfig
	logger *logger.Logger
}

// NewEmailSender creates a sender with the given SMTP configuration.
func NewEmailSender(cfg config.SMTPConfig, log *logger.Logger) *EmailSender {
	return &EmailSender{
		cfg:    cfg,
		logger: log,
	}
}

// Send delivers an email with HTML body and plain text fallback. A
// disabled sender silently drops the message, so callers don't need
// their own enabled checks.
func (s *EmailSender) Send(msg *RenderedMessage) error {
	if !s.cfg.Enabled {
		s.logger.WithField("subject", msg.Subject).Debug("Email delivery disabled, dropping message")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", msg.Subject)

	if msg.HTML != "" && msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	} else if msg.HTML != "" {
		m.SetBody("text/html", msg.HTML)
	} else {
		m.SetBody("text/plain", msg.Text)
	}

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	dialer.Timeout = 10 * time.Second

	if err := dialer.DialAndSend(m); err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"to":      s.cfg.To,
			"subject": msg.Subject,
		}).Error("Failed to send email")
		return err
	}

	s.logger.WithField("subject", msg.Subject).Info("Email sent")
	return nil
}
