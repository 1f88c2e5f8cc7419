package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/souqhq/souq/internal/pkg/goerror"
	"github.com/souqhq/souq/internal/pkg/jwt"
)

type SellerProfileOutput struct {
	ID        int64
	Email     string
	FullName  string
	Phone     string
	Country   string
	CreatedAt time.Time
}

func (s *Usecase) SellerProfile(ctx context.Context) (*SellerProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "SellerProfile")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil || clm.Role != accountKindSeller {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	seller, err := s.repoDB.GetSellerByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "seller account not found", "seller_id", clm.UserID)
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get seller by id", "seller_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SellerProfileOutput{
		ID:        seller.ID,
		Email:     seller.Email,
		FullName:  seller.FullName,
		Phone:     seller.Phone,
		Country:   seller.Country,
		CreatedAt: seller.CreatedAt,
	}, nil
}
