package inbound

import (
	"github.com/souqhq/souq/internal/account/usecase"
	"github.com/souqhq/souq/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for account registration, authentication,
// and password recovery workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register starts user registration by sending a verification code.
// @Summary Register user
// @Description Sends a verification code to the email. The account is created once the code is verified.
// @Tags Account, Registration
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} router.successResponse "Verification code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Cooldown or request limit reached"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	}); err != nil {
		return nil, err
	}

	return RegisterResponse{}, nil
}

// RegisterVerify verifies the code and creates the user account.
// @Summary Verify user registration
// @Description Checks the emailed verification code and creates the account.
// @Tags Account, Registration
// @Accept json
// @Produce json
// @Param request body RegisterVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse "Account created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid or expired code"
// @Failure 403 {object} router.errorResponse "Account locked"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/register/verify [post]
func (h *HTTPEndpoint) RegisterVerify(r *router.Request) (any, error) {
	var req RegisterVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RegisterVerify(r.Context(), usecase.RegisterVerifyInput{
		Email:    req.Email,
		Code:     req.Code,
		Password: req.Password,
		FullName: req.FullName,
	}); err != nil {
		return nil, err
	}

	return RegisterVerifyResponse{}, nil
}

// Login authenticates a user and returns tokens.
// @Summary Authenticate user
// @Description Validates credentials and returns access/refresh tokens.
// @Tags Account, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		ID:           resp.ID,
		Email:        resp.Email,
		FullName:     resp.FullName,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// RefreshToken issues a new access token using a refresh token.
// @Summary Refresh access token
// @Description Exchanges a valid refresh token for a new access token.
// @Tags Account, Authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token payload"
// @Success 200 {object} router.successResponse{data=RefreshTokenResponse} "Token refresh result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid refresh token"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/refresh [post]
func (h *HTTPEndpoint) RefreshToken(r *router.Request) (any, error) {
	var req RefreshTokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RefreshToken(r.Context(), usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return nil, err
	}

	return RefreshTokenResponse{AccessToken: resp.AccessToken}, nil
}

// Profile returns the authenticated user's account.
// @Summary Get profile
// @Description Returns the account of the authenticated user.
// @Tags Account, Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Account profile"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:        resp.ID,
		Email:     resp.Email,
		FullName:  resp.FullName,
		CreatedAt: resp.CreatedAt,
	}, nil
}

// PasswordForgot sends a password-reset verification code.
// @Summary Request password reset
// @Description Sends a verification code to the email of an existing account.
// @Tags Account, Password
// @Accept json
// @Produce json
// @Param request body PasswordForgotRequest true "Forgot password payload"
// @Success 200 {object} router.successResponse "Verification code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Cooldown or request limit reached"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/password/forgot [post]
func (h *HTTPEndpoint) PasswordForgot(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordForgot(r.Context(), usecase.PasswordForgotInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return PasswordForgotResponse{}, nil
}

// PasswordForgotVerify verifies the password-reset code.
// @Summary Verify password reset code
// @Description Checks the emailed verification code before allowing a password reset.
// @Tags Account, Password
// @Accept json
// @Produce json
// @Param request body PasswordForgotVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse "Code verified"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid or expired code"
// @Failure 403 {object} router.errorResponse "Account locked"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/password/forgot/verify [post]
func (h *HTTPEndpoint) PasswordForgotVerify(r *router.Request) (any, error) {
	var req PasswordForgotVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordForgotVerify(r.Context(), usecase.PasswordForgotVerifyInput{
		Email: req.Email,
		Code:  req.Code,
	}); err != nil {
		return nil, err
	}

	return PasswordForgotVerifyResponse{}, nil
}

// PasswordReset sets a new password after a verified reset code.
// @Summary Reset password
// @Description Replaces the account password. The new password must differ from the current one.
// @Tags Account, Password
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Reset payload"
// @Success 200 {object} router.successResponse "Password updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/password/reset [post]
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordResetResponse{}, nil
}

// SellerRegister starts seller onboarding by sending a verification code.
// @Summary Register seller
// @Description Sends a verification code to the email. The seller is created once the code is verified.
// @Tags Account, Registration
// @Accept json
// @Produce json
// @Param request body SellerRegisterRequest true "Seller registration payload"
// @Success 200 {object} router.successResponse "Verification code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Cooldown or request limit reached"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/seller/register [post]
func (h *HTTPEndpoint) SellerRegister(r *router.Request) (any, error) {
	var req SellerRegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SellerRegister(r.Context(), usecase.SellerRegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Country:  req.Country,
	}); err != nil {
		return nil, err
	}

	return SellerRegisterResponse{}, nil
}

// SellerVerify verifies the code and creates the seller account.
// @Summary Verify seller registration
// @Description Checks the emailed verification code and creates the seller.
// @Tags Account, Registration
// @Accept json
// @Produce json
// @Param request body SellerVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=SellerVerifyResponse} "Seller created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid or expired code"
// @Failure 403 {object} router.errorResponse "Account locked"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/seller/verify [post]
func (h *HTTPEndpoint) SellerVerify(r *router.Request) (any, error) {
	var req SellerVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SellerVerify(r.Context(), usecase.SellerVerifyInput{
		Email:    req.Email,
		Code:     req.Code,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Country:  req.Country,
	})
	if err != nil {
		return nil, err
	}

	return SellerVerifyResponse{
		ID:       resp.ID,
		Email:    resp.Email,
		FullName: resp.FullName,
		Phone:    resp.Phone,
		Country:  resp.Country,
	}, nil
}

// SellerLogin authenticates a seller and returns tokens.
// @Summary Authenticate seller
// @Description Validates seller credentials and returns access/refresh tokens.
// @Tags Account, Authentication
// @Accept json
// @Produce json
// @Param request body SellerLoginRequest true "Seller login payload"
// @Success 200 {object} router.successResponse{data=SellerLoginResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/seller/login [post]
func (h *HTTPEndpoint) SellerLogin(r *router.Request) (any, error) {
	var req SellerLoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SellerLogin(r.Context(), usecase.SellerLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return SellerLoginResponse{
		ID:           resp.ID,
		Email:        resp.Email,
		FullName:     resp.FullName,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// SellerProfile returns the authenticated seller's account.
// @Summary Get seller profile
// @Description Returns the account of the authenticated seller.
// @Tags Account, Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=SellerProfileResponse} "Seller profile"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/account/seller/profile [get]
func (h *HTTPEndpoint) SellerProfile(r *router.Request) (any, error) {
	resp, err := h.uc.SellerProfile(r.Context())
	if err != nil {
		return nil, err
	}

	return SellerProfileResponse{
		ID:        resp.ID,
		Email:     resp.Email,
		FullName:  resp.FullName,
		Phone:     resp.Phone,
		Country:   resp.Country,
		CreatedAt: resp.CreatedAt,
	}, nil
}
