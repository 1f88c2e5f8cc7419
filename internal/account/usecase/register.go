package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/souqhq/souq/internal/pkg/goerror"
	"github.com/souqhq/souq/internal/pkg/otpguard"
)

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,min=3,max=100,alphaspace"`
}

// Register starts user registration by dispatching a verification code. No
// account row is created here; that happens in RegisterVerify once the code
// checks out.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return goerror.NewBusiness("User already exists with this email!", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return s.issueCode(ctx, in.Email, otpguard.Dispatch{
		Template: templateUserActivation,
		Name:     in.FullName,
	})
}
