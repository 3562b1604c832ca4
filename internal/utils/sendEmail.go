package utils

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"recipefinder/internal/config"

	"go.uber.org/zap"
)

// Mailer sends plain-text email over SMTP with STARTTLS.
type Mailer struct {
	config config.MailConfig
	log    *zap.Logger
}

func NewMailer(cfg config.MailConfig, log *zap.Logger) *Mailer {
	return &Mailer{config: cfg, log: log}
}

func (m *Mailer) Send(recipient, subject, message string) error {
	if m.config.SMTPHost == "" {
		// No SMTP server configured (local development): log instead of sending.
		m.log.Info("email not sent, SMTP disabled",
			zap.String("recipient", recipient),
			zap.String("subject", subject),
			zap.String("body", message))
		return nil
	}

	smtpAddr := m.config.SMTPHost + ":" + m.config.SMTPPort
	client, err := smtp.Dial(smtpAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: m.config.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.SMTPHost)
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err = client.Mail(m.config.Sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to create mail writer: %w", err)
	}

	emailBody := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.config.Sender, recipient, subject, message)

	if _, err = writer.Write([]byte(emailBody)); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close mail writer: %w", err)
	}

	if err = client.Quit(); err != nil {
		m.log.Warn("failed to close SMTP connection properly", zap.Error(err))
	}

	m.log.Info("email sent", zap.String("recipient", recipient), zap.String("subject", subject))
	return nil
}
