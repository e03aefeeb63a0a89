// Package mailer sends notification emails over SMTP.
package mailer

import (
	"fmt"
	"net"
	"net/smtp"
)

// SMTP sends mail through a single SMTP server with plain auth.
type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewSMTP constructs an SMTP sender. From defaults to the username.
func NewSMTP(host, port, username, password, from string) *SMTP {
	if from == "" {
		from = username
	}
	return &SMTP{Host: host, Port: port, Username: username, Password: password, From: from}
}

// Send delivers a plain-text email to the recipient.
func (m *SMTP) Send(to, subject, body string) error {
	if m.Host == "" || m.Username == "" || m.Password == "" {
		return fmt.Errorf("SMTP environment variables are not set")
	}

	addr := net.JoinHostPort(m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)

	msg := []byte("From: " + m.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(addr, auth, m.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email via %s: %v", addr, err)
	}
	return nil
}
