package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/souqhq/souq/internal/pkg/goerror"
)

type RefreshTokenInput struct {
	RefreshToken string `validate:"required"`
}

type RefreshTokenOutput struct {
	AccessToken string
}

// RefreshToken exchanges a valid refresh token for a new access token. The
// refresh token stays stateless; the account is re-read so a removed account
// stops refreshing immediately.
func (s *Usecase) RefreshToken(ctx context.Context, in RefreshTokenInput) (*RefreshTokenOutput, error) {
	ctx, span := s.startSpan(ctx, "RefreshToken")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	claims, err := s.refreshJWT.Verify(in.RefreshToken)
	if err != nil {
		slog.WarnContext(ctx, "refresh token rejected", "error", err)
		return nil, goerror.NewBusiness("Invalid or expired refresh token", goerror.CodeUnauthorized)
	}

	var email string
	switch claims.Role {
	case accountKindSeller:
		seller, serr := s.repoDB.GetSellerByID(ctx, claims.UserID)
		if errors.Is(serr, goerror.ErrNotFound) {
			slog.WarnContext(ctx, "seller account not found for refresh token", "seller_id", claims.UserID)
			return nil, goerror.NewBusiness("Invalid or expired refresh token", goerror.CodeUnauthorized)
		}
		if serr != nil {
			slog.ErrorContext(ctx, "failed to repo get seller by id", "seller_id", claims.UserID, "error", serr)
			return nil, goerror.NewServer(serr)
		}
		email = seller.Email
	default:
		user, uerr := s.repoDB.GetUserByID(ctx, claims.UserID)
		if errors.Is(uerr, goerror.ErrNotFound) {
			slog.WarnContext(ctx, "user account not found for refresh token", "user_id", claims.UserID)
			return nil, goerror.NewBusiness("Invalid or expired refresh token", goerror.CodeUnauthorized)
		}
		if uerr != nil {
			slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", claims.UserID, "error", uerr)
			return nil, goerror.NewServer(uerr)
		}
		email = user.Email
	}

	acToken, err := s.jwt.Generate(claims.UserID, email, claims.Role)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "account_id", claims.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RefreshTokenOutput{AccessToken: acToken}, nil
}
