package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/souqhq/souq/internal/account/entity"
	"github.com/souqhq/souq/internal/pkg/goerror"
	"github.com/souqhq/souq/internal/pkg/goroutine"
	"github.com/souqhq/souq/internal/pkg/hash"
	"github.com/souqhq/souq/internal/pkg/instrument"
	"github.com/souqhq/souq/internal/pkg/jwt"
	"github.com/souqhq/souq/internal/pkg/otpguard"
	"github.com/souqhq/souq/internal/pkg/uid"
	"github.com/souqhq/souq/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

const (
	templateUserActivation   = "user-activation"
	templateSellerActivation = "seller-activation"
	templateForgotPassword   = "forgot-password"
)

const (
	accountKindUser   = "user"
	accountKindSeller = "seller"
)

type AccountRegisteredEvent struct {
	AccountID int64
	Email     string
	FullName  string
	Kind      string
}

type PasswordResetEvent struct {
	AccountID int64
	Email     string
}

type repoMessaging interface {
	PublishAccountRegistered(ctx context.Context, msg AccountRegisteredEvent) error
	PublishPasswordReset(ctx context.Context, msg PasswordResetEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetSellerByEmail(ctx context.Context, email string) (*entity.Seller, error)
	GetSellerByID(ctx context.Context, id int64) (*entity.Seller, error)

	CreateUser(ctx context.Context, in entity.NewUser) error
	CreateSeller(ctx context.Context, in entity.NewSeller) error

	UpdateUserPassword(ctx context.Context, id int64, hashed string) error
}

type guard interface {
	CheckRestrictions(ctx context.Context, identity string) error
	TrackRequest(ctx context.Context, identity string) error
	Issue(ctx context.Context, identity string, d otpguard.Dispatch) error
	Verify(ctx context.Context, identity, candidate string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	guard         guard
	validator     validator.Validator
	bcrypt        hash.Hash
	uid           uid.NumberID
	jwt           jwt.JWT
	refreshJWT    jwt.JWT
	goroutine     *goroutine.Manager
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Guard         guard
	Validator     validator.Validator
	Bcrypt        hash.Hash
	UID           uid.NumberID
	JWT           jwt.JWT
	RefreshJWT    jwt.JWT
	Goroutine     *goroutine.Manager
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		guard:         dep.Guard,
		validator:     dep.Validator,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		jwt:           dep.JWT,
		refreshJWT:    dep.RefreshJWT,
		goroutine:     dep.Goroutine,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.usecase").Start(ctx, name)
}

// issueCode runs the full issuance pipeline: restriction checks first, then
// request tracking, then generation and dispatch. Guard denials surface as
// business errors with user-facing messages; dispatch and store failures as
// server errors.
func (s *Usecase) issueCode(ctx context.Context, email string, d otpguard.Dispatch) error {
	if err := s.guard.CheckRestrictions(ctx, email); err != nil {
		return s.mapGuardError(ctx, email, err)
	}

	if err := s.guard.TrackRequest(ctx, email); err != nil {
		return s.mapGuardError(ctx, email, err)
	}

	if err := s.guard.Issue(ctx, email, d); err != nil {
		return s.mapGuardError(ctx, email, err)
	}

	return nil
}

func (s *Usecase) verifyCode(ctx context.Context, email, code string) error {
	if err := s.guard.Verify(ctx, email, code); err != nil {
		return s.mapGuardError(ctx, email, err)
	}
	return nil
}

func (s *Usecase) mapGuardError(ctx context.Context, email string, err error) error {
	var invalid *otpguard.InvalidCodeError
	var dispatch *otpguard.DispatchError

	switch {
	case errors.Is(err, otpguard.ErrAccountLocked):
		return goerror.NewBusiness("Account is locked due to multiple attempts! try after 30 minutes", goerror.CodeForbidden)

	case errors.Is(err, otpguard.ErrTooManyRequests):
		return goerror.NewBusiness("Too many OTP requests , please try again after 1 hour", goerror.CodeTooManyRequest)

	case errors.Is(err, otpguard.ErrCooldown):
		return goerror.NewBusiness("Please wait 1 minute before requesting a new OTP!", goerror.CodeTooManyRequest)

	case errors.Is(err, otpguard.ErrExpired):
		return goerror.NewBusiness("Invalid or Expired OTP!", goerror.CodeUnauthorized)

	case errors.Is(err, otpguard.ErrLockedOut):
		return goerror.NewBusiness("Too many incorrect attempts. Your account is locked for 30 minutes!", goerror.CodeForbidden)

	case errors.As(err, &invalid):
		return goerror.NewBusiness(fmt.Sprintf("Invalid OTP! You have %d attempts left.", invalid.Remaining), goerror.CodeUnauthorized)

	case errors.As(err, &dispatch):
		slog.ErrorContext(ctx, "failed to dispatch verification code", "email", email, "error", err)
		return goerror.NewServer(err)

	default:
		slog.ErrorContext(ctx, "verification code store failure", "email", email, "error", err)
		return goerror.NewServer(err)
	}
}
