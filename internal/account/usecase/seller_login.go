package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/souqhq/souq/internal/pkg/goerror"
)

type SellerLoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type SellerLoginOutput struct {
	ID           int64
	Email        string
	FullName     string
	AccessToken  string
	RefreshToken string
}

func (s *Usecase) SellerLogin(ctx context.Context, in SellerLoginInput) (*SellerLoginOutput, error) {
	ctx, span := s.startSpan(ctx, "SellerLogin")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	seller, err := s.repoDB.GetSellerByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "seller account not found", "email", in.Email)
		return nil, goerror.NewBusiness("Invalid email or password!", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get seller by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(seller.Password, in.Password) {
		slog.WarnContext(ctx, "password seller account not match", "seller_id", seller.ID)
		return nil, goerror.NewBusiness("Invalid email or password!", goerror.CodeUnauthorized)
	}

	acToken, err := s.jwt.Generate(seller.ID, seller.Email, accountKindSeller)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "seller_id", seller.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	refToken, err := s.refreshJWT.Generate(seller.ID, seller.Email, accountKindSeller)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate refresh jwt token", "seller_id", seller.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SellerLoginOutput{
		ID:           seller.ID,
		Email:        seller.Email,
		FullName:     seller.FullName,
		AccessToken:  acToken,
		RefreshToken: refToken,
	}, nil
}
