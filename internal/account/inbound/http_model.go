package inbound

import "time"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type RegisterResponse struct{}

func (RegisterResponse) Message() string {
	return "OTP sent to email. Please verify your account."
}

type RegisterVerifyRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type RegisterVerifyResponse struct{}

func (RegisterVerifyResponse) Message() string {
	return "User registered successfully!"
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID           int64  `json:"id,string"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (LoginResponse) Message() string {
	return "User logged in successfully!"
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type ProfileResponse struct {
	ID        int64     `json:"id,string"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type PasswordForgotRequest struct {
	Email string `json:"email"`
}

type PasswordForgotResponse struct{}

func (PasswordForgotResponse) Message() string {
	return "OTP sent to email. Please verify your account."
}

type PasswordForgotVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type PasswordForgotVerifyResponse struct{}

func (PasswordForgotVerifyResponse) Message() string {
	return "OTP verified. You can now reset your password!"
}

type PasswordResetRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "Password reset successfully!"
}

type SellerRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone_number"`
	Country  string `json:"country"`
}

type SellerRegisterResponse struct{}

func (SellerRegisterResponse) Message() string {
	return "OTP sent to email. Please verify your account."
}

type SellerVerifyRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone_number"`
	Country  string `json:"country"`
}

type SellerVerifyResponse struct {
	ID       int64  `json:"id,string"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone_number"`
	Country  string `json:"country"`
}

func (SellerVerifyResponse) Message() string {
	return "Seller registered successfully"
}

type SellerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SellerLoginResponse struct {
	ID           int64  `json:"id,string"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (SellerLoginResponse) Message() string {
	return "Seller logged in successfully!"
}

type SellerProfileResponse struct {
	ID        int64     `json:"id,string"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone_number"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}
