package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/souqhq/souq/internal/account/entity"
	"github.com/souqhq/souq/internal/pkg/goerror"
)

type SellerVerifyInput struct {
	Email    string `validate:"required,email"`
	Code     string `validate:"required,len=4,numeric"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,min=3,max=100,alphaspace"`
	Phone    string `validate:"required,e164"`
	Country  string `validate:"required,min=2,max=56"`
}

type SellerVerifyOutput struct {
	ID       int64
	Email    string
	FullName string
	Phone    string
	Country  string
}

// SellerVerify checks the verification code, then creates the seller account
// with the bcrypt-hashed password and announces the registration.
func (s *Usecase) SellerVerify(ctx context.Context, in SellerVerifyInput) (*SellerVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "SellerVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetSellerByEmail(ctx, in.Email)
	if err == nil {
		return nil, goerror.NewBusiness("Seller already exists with this email!", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get seller by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.verifyCode(ctx, in.Email, in.Code); err != nil {
		return nil, err
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	newSeller := entity.NewSeller{
		ID:       s.uid.Generate(),
		Email:    in.Email,
		FullName: in.FullName,
		Password: string(hashedPassword),
		Phone:    in.Phone,
		Country:  in.Country,
	}

	if err := s.repoDB.CreateSeller(ctx, newSeller); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Seller already exists with this email!", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create seller", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Announce in the background; registration already succeeded.
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		err := s.repoMessaging.PublishAccountRegistered(ctx, AccountRegisteredEvent{
			AccountID: newSeller.ID,
			Email:     newSeller.Email,
			FullName:  newSeller.FullName,
			Kind:      accountKindSeller,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to publish account registered", "account_id", newSeller.ID, "error", err)
		}
		return err
	})

	return &SellerVerifyOutput{
		ID:       newSeller.ID,
		Email:    newSeller.Email,
		FullName: newSeller.FullName,
		Phone:    newSeller.Phone,
		Country:  newSeller.Country,
	}, nil
}
