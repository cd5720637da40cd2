package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/hys-retail/storedesk/internal/shared/config"
)

// Sender delivers ticket mail to the configured IT mailbox.
type Sender struct {
	config sharedConfig.EmailConfig
	dialer *gomail.Dialer
}

func NewSender(config sharedConfig.EmailConfig) *Sender {
	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)

	return &Sender{
		config: config,
		dialer: dialer,
	}
}

// Enabled reports whether an SMTP host and recipient are configured.
func (s *Sender) Enabled() bool {
	return s.config.Enabled()
}

// Send mails subject to the IT mailbox with a plain body and an HTML alternative.
func (s *Sender) Send(subject, htmlBody, plainBody string) error {
	m := s.buildMessage(subject, htmlBody, plainBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *Sender) buildMessage(subject, htmlBody, plainBody string) *gomail.Message {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", s.config.ToAddress)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}
	return m
}
