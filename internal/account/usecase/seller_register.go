package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/souqhq/souq/internal/pkg/goerror"
	"github.com/souqhq/souq/internal/pkg/otpguard"
)

type SellerRegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,min=3,max=100,alphaspace"`
	Phone    string `validate:"required,e164"`
	Country  string `validate:"required,min=2,max=56"`
}

// SellerRegister starts seller onboarding by dispatching a verification code.
// The seller row is created in SellerVerify once the code checks out.
func (s *Usecase) SellerRegister(ctx context.Context, in SellerRegisterInput) error {
	ctx, span := s.startSpan(ctx, "SellerRegister")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetSellerByEmail(ctx, in.Email)
	if err == nil {
		return goerror.NewBusiness("Seller already exists with this email!", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get seller by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return s.issueCode(ctx, in.Email, otpguard.Dispatch{
		Template: templateSellerActivation,
		Name:     in.FullName,
	})
}
