package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/scamaware/jersey/pkg/formkit"
)

// Config holds outbound email configuration. Tokens may be empty in
// development, where the log sender is used instead.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@scamaware.je"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL" envDefault:"help@scamaware.je"`
}

type postmarkSender struct {
	client *postmark.Client
	cfg    Config
}

// NewPostmarkSender creates a Postmark-backed Sender. Tokens and valid
// sender addresses are required so a misconfigured service fails at startup
// rather than silently dropping mail.
func NewPostmarkSender(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	addrRules := &formkit.RuleSet{Required: true, Email: true}
	if msg := formkit.Evaluate(cfg.SenderEmail, addrRules); msg != "" {
		return nil, fmt.Errorf("%w: SenderEmail: %s", ErrInvalidConfig, msg)
	}
	if msg := formkit.Evaluate(cfg.ReplyToEmail, addrRules); msg != "" {
		return nil, fmt.Errorf("%w: ReplyToEmail: %s", ErrInvalidConfig, msg)
	}

	return &postmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		cfg:    cfg,
	}, nil
}

func (s *postmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     s.cfg.SenderEmail,
		ReplyTo:  s.cfg.ReplyToEmail,
		To:       msg.To,
		Subject:  msg.Subject,
		Tag:      msg.Tag,
		TextBody: msg.BodyText,
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
