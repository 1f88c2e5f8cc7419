package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/souqhq/souq/internal/pkg/goerror"
	"github.com/souqhq/souq/internal/pkg/otpguard"
)

type PasswordForgotInput struct {
	Email string `validate:"required,email"`
}

// PasswordForgot dispatches a password-reset verification code to an
// existing user account.
func (s *Usecase) PasswordForgot(ctx context.Context, in PasswordForgotInput) error {
	ctx, span := s.startSpan(ctx, "PasswordForgot")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("User not found!", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return s.issueCode(ctx, in.Email, otpguard.Dispatch{
		Template: templateForgotPassword,
		Name:     user.FullName,
	})
}
