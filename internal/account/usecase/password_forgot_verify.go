package usecase

import (
	"context"
	"strings"

	"github.com/souqhq/souq/internal/pkg/goerror"
)

type PasswordForgotVerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=4,numeric"`
}

// PasswordForgotVerify consumes the password-reset code. A successful check
// clears the code, so the follow-up PasswordReset call does not need it.
func (s *Usecase) PasswordForgotVerify(ctx context.Context, in PasswordForgotVerifyInput) error {
	ctx, span := s.startSpan(ctx, "PasswordForgotVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	return s.verifyCode(ctx, in.Email, in.Code)
}
