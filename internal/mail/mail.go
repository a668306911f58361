// Package mail relays contact-form messages over SMTP.
package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// Sentinel errors for the contact relay.
var (
	ErrNotConfigured = errors.New("mail transport not configured")
	ErrSend          = errors.New("mail delivery failed")
)

// Message is one contact-form submission.
type Message struct {
	Name    string
	Email   string
	Content string
}

// Relay delivers contact messages.
type Relay interface {
	Send(msg Message) error
}

// SMTPOptions configures an SMTPRelay.
type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// SMTPRelay sends contact messages through a plain SMTP transport.
type SMTPRelay struct {
	opts SMTPOptions
	send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPRelay creates a relay. Configuration completeness is checked at
// send time so a server without mail settings still boots.
func NewSMTPRelay(opts SMTPOptions) *SMTPRelay {
	return &SMTPRelay{opts: opts, send: smtp.SendMail}
}

// Send relays the message to the configured recipient.
func (r *SMTPRelay) Send(msg Message) error {
	if r.opts.Host == "" || r.opts.From == "" || r.opts.To == "" {
		return ErrNotConfigured
	}

	var auth smtp.Auth
	if r.opts.Username != "" {
		auth = smtp.PlainAuth("", r.opts.Username, r.opts.Password, r.opts.Host)
	}

	body := strings.Join([]string{
		"From: " + r.opts.From,
		"To: " + r.opts.To,
		"Reply-To: " + msg.Email,
		"Subject: Contact form message from " + msg.Name,
		"",
		msg.Content,
		"",
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", r.opts.Host, r.opts.Port)
	if err := r.send(addr, auth, r.opts.From, []string{r.opts.To}, []byte(body)); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	return nil
}
