package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/souqhq/souq/internal/pkg/goerror"
)

type PasswordResetInput struct {
	Email       string `validate:"required,email"`
	NewPassword string `validate:"required,password"`
}

// PasswordReset replaces the user's password after a verified forgot-password
// flow. Reusing the current password is rejected.
func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
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

	if s.bcrypt.Verify(user.Password, in.NewPassword) {
		return goerror.NewBusiness("New password cannot be same as old password", goerror.CodeInvalidInput)
	}

	hashedPassword, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateUserPassword(ctx, user.ID, string(hashedPassword)); err != nil {
		slog.ErrorContext(ctx, "failed to repo update user password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	// Announce in the background; the password is already updated.
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		err := s.repoMessaging.PublishPasswordReset(ctx, PasswordResetEvent{
			AccountID: user.ID,
			Email:     user.Email,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to publish password reset", "account_id", user.ID, "error", err)
		}
		return err
	})

	return nil
}
