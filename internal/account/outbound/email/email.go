package email

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/souqhq/souq/internal/pkg/instrument"
	"github.com/souqhq/souq/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

type template struct {
	subject string
	text    string
	html    string
}

// Body templates keyed by purpose. Placeholders are recipient name and code.
var templates = map[string]template{
	"user-activation": {
		subject: "Verify your email",
		text:    "Hello %s,\n\nYour verification code is %s. It expires in 5 minutes.\n\nIf you did not sign up, you can ignore this email.",
		html:    "<p>Hello %s,</p><p>Your verification code is <strong>%s</strong>. It expires in 5 minutes.</p><p>If you did not sign up, you can ignore this email.</p>",
	},
	"seller-activation": {
		subject: "Verify your seller account",
		text:    "Hello %s,\n\nYour seller verification code is %s. It expires in 5 minutes.\n\nIf you did not sign up, you can ignore this email.",
		html:    "<p>Hello %s,</p><p>Your seller verification code is <strong>%s</strong>. It expires in 5 minutes.</p><p>If you did not sign up, you can ignore this email.</p>",
	},
	"forgot-password": {
		subject: "Reset your password",
		text:    "Hello %s,\n\nYour password reset code is %s. It expires in 5 minutes.\n\nIf you did not request this, you can ignore this email.",
		html:    "<p>Hello %s,</p><p>Your password reset code is <strong>%s</strong>. It expires in 5 minutes.</p><p>If you did not request this, you can ignore this email.</p>",
	},
}

// Mail delivers verification codes over an email provider. Transient provider
// failures are retried with a capped fibonacci backoff before giving up.
type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

func (m *Mail) Send(ctx context.Context, address, tmplName, name, code string) error {
	ctx, span := m.ins.Tracer("account.outbound.email").Start(ctx, "Send")
	defer span.End()

	tmpl, ok := templates[tmplName]
	if !ok {
		err := fmt.Errorf("unknown email template %q", tmplName)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	msg := mail.Message{
		To:       []string{address},
		Subject:  tmpl.subject,
		TextBody: fmt.Sprintf(tmpl.text, name, code),
		HTMLBody: fmt.Sprintf(tmpl.html, name, code),
	}

	backoff := retry.NewFibonacci(500 * time.Millisecond)
	backoff = retry.WithCappedDuration(5*time.Second, backoff)
	backoff = retry.WithMaxRetries(3, backoff)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := m.client.Send(ctx, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
