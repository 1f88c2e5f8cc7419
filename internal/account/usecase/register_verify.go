package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/souqhq/souq/internal/account/entity"
	"github.com/souqhq/souq/internal/pkg/goerror"
)

type RegisterVerifyInput struct {
	Email    string `validate:"required,email"`
	Code     string `validate:"required,len=4,numeric"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,min=3,max=100,alphaspace"`
}

// RegisterVerify checks the verification code, then creates the user account
// with the bcrypt-hashed password and announces the registration.
func (s *Usecase) RegisterVerify(ctx context.Context, in RegisterVerifyInput) error {
	ctx, span := s.startSpan(ctx, "RegisterVerify")
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

	if err := s.verifyCode(ctx, in.Email, in.Code); err != nil {
		return err
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	newUser := entity.NewUser{
		ID:       s.uid.Generate(),
		Email:    in.Email,
		FullName: in.FullName,
		Password: string(hashedPassword),
	}

	if err := s.repoDB.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("User already exists with this email!", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	// Announce in the background; registration already succeeded.
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		err := s.repoMessaging.PublishAccountRegistered(ctx, AccountRegisteredEvent{
			AccountID: newUser.ID,
			Email:     newUser.Email,
			FullName:  newUser.FullName,
			Kind:      accountKindUser,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to publish account registered", "account_id", newUser.ID, "error", err)
		}
		return err
	})

	return nil
}
