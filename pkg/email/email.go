// Package email provides a provider-agnostic interface for sending
// transactional email, with a Postmark implementation for production and a
// logging sender for development environments where outbound mail is
// disabled.
package email

import (
	"context"
	"errors"
	"log/slog"

	"github.com/scamaware/jersey/pkg/formkit"
)

var (
	// ErrInvalidConfig indicates missing or malformed sender configuration.
	ErrInvalidConfig = errors.New("email: invalid config")
	// ErrInvalidParams indicates the message itself failed validation.
	ErrInvalidParams = errors.New("email: invalid send params")
	// ErrSendFailed indicates the provider rejected or failed the send.
	ErrSendFailed = errors.New("email: send failed")
)

// Sender sends a single transactional email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email.
type Message struct {
	To       string
	Subject  string
	BodyText string
	Tag      string
}

var recipientRules = &formkit.RuleSet{Required: true, Email: true}

// Validate checks the message before it is handed to a provider.
func (m Message) Validate() error {
	if msg := formkit.Evaluate(m.To, recipientRules); msg != "" {
		return errors.Join(ErrInvalidParams, errors.New("recipient: "+msg))
	}
	if m.Subject == "" {
		return errors.Join(ErrInvalidParams, errors.New("subject is required"))
	}
	if m.BodyText == "" {
		return errors.Join(ErrInvalidParams, errors.New("body is required"))
	}
	return nil
}

// LogSender is a development Sender that records messages to a logger
// instead of delivering them.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender returns a Sender that only logs.
func NewLogSender(log *slog.Logger) *LogSender {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "email suppressed in development",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("tag", msg.Tag),
	)
	return nil
}
