package inbound

import (
	"context"

	"github.com/souqhq/souq/internal/account/usecase"
	"github.com/souqhq/souq/internal/pkg/router"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	RefreshToken(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)

	Register(ctx context.Context, in usecase.RegisterInput) error
	RegisterVerify(ctx context.Context, in usecase.RegisterVerifyInput) error

	SellerRegister(ctx context.Context, in usecase.SellerRegisterInput) error
	SellerVerify(ctx context.Context, in usecase.SellerVerifyInput) (*usecase.SellerVerifyOutput, error)
	SellerLogin(ctx context.Context, in usecase.SellerLoginInput) (*usecase.SellerLoginOutput, error)

	PasswordForgot(ctx context.Context, in usecase.PasswordForgotInput) error
	PasswordForgotVerify(ctx context.Context, in usecase.PasswordForgotVerifyInput) error
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
	SellerProfile(ctx context.Context) (*usecase.SellerProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Authentication
	r.POST("/api/v1/account/login", end.Login)
	r.POST("/api/v1/account/refresh", end.RefreshToken)

	// User registration
	r.POST("/api/v1/account/register", end.Register)
	r.POST("/api/v1/account/register/verify", end.RegisterVerify)

	// Seller registration and authentication
	r.POST("/api/v1/account/seller/register", end.SellerRegister)
	r.POST("/api/v1/account/seller/verify", end.SellerVerify)
	r.POST("/api/v1/account/seller/login", end.SellerLogin)

	// Password recovery
	r.POST("/api/v1/account/password/forgot", end.PasswordForgot)
	r.POST("/api/v1/account/password/forgot/verify", end.PasswordForgotVerify)
	r.POST("/api/v1/account/password/reset", end.PasswordReset)

	// Profile (need authenticated)
	r.GET("/api/v1/account/profile", end.Profile)
	r.GET("/api/v1/account/seller/profile", end.SellerProfile)
}
