package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/souqhq/souq/internal/account/usecase"
	"github.com/souqhq/souq/internal/pkg/config"
	"github.com/souqhq/souq/internal/pkg/goerror"
	"github.com/souqhq/souq/internal/pkg/instrument"
	"github.com/souqhq/souq/internal/pkg/jwt"
	"github.com/souqhq/souq/internal/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUC struct {
	registerIn    *usecase.RegisterInput
	registerErr   error
	loginOut      *usecase.LoginOutput
	loginErr      error
	profileOut    *usecase.ProfileOutput
	sellerIn      *usecase.SellerRegisterInput
	sellerLogin   *usecase.SellerLoginOutput
	sellerProfile *usecase.SellerProfileOutput
	passwordReset *usecase.PasswordResetInput
}

func (f *fakeUC) Login(_ context.Context, _ usecase.LoginInput) (*usecase.LoginOutput, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeUC) RefreshToken(_ context.Context, _ usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	return &usecase.RefreshTokenOutput{AccessToken: "fresh"}, nil
}

func (f *fakeUC) Register(_ context.Context, in usecase.RegisterInput) error {
	f.registerIn = &in
	return f.registerErr
}

func (f *fakeUC) RegisterVerify(_ context.Context, _ usecase.RegisterVerifyInput) error {
	return nil
}

func (f *fakeUC) SellerRegister(_ context.Context, in usecase.SellerRegisterInput) error {
	f.sellerIn = &in
	return nil
}

func (f *fakeUC) SellerVerify(_ context.Context, in usecase.SellerVerifyInput) (*usecase.SellerVerifyOutput, error) {
	return &usecase.SellerVerifyOutput{
		ID:       42,
		Email:    in.Email,
		FullName: in.FullName,
		Phone:    in.Phone,
		Country:  in.Country,
	}, nil
}

func (f *fakeUC) SellerLogin(_ context.Context, _ usecase.SellerLoginInput) (*usecase.SellerLoginOutput, error) {
	if f.sellerLogin == nil {
		return nil, goerror.NewBusiness("Invalid email or password!", goerror.CodeUnauthorized)
	}
	return f.sellerLogin, nil
}

func (f *fakeUC) SellerProfile(_ context.Context) (*usecase.SellerProfileOutput, error) {
	if f.sellerProfile == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return f.sellerProfile, nil
}

func (f *fakeUC) PasswordForgot(_ context.Context, _ usecase.PasswordForgotInput) error {
	return nil
}

func (f *fakeUC) PasswordForgotVerify(_ context.Context, _ usecase.PasswordForgotVerifyInput) error {
	return nil
}

func (f *fakeUC) PasswordReset(_ context.Context, in usecase.PasswordResetInput) error {
	f.passwordReset = &in
	return nil
}

func (f *fakeUC) Profile(_ context.Context) (*usecase.ProfileOutput, error) {
	if f.profileOut == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return f.profileOut, nil
}

type authJWT struct{}

func (authJWT) Generate(int64, string, string) (string, error) { return "token", nil }

func (authJWT) Verify(string) (jwt.Claims, error) {
	return jwt.Claims{UserID: 7, UserEmail: "jane@example.com", Role: "user"}, nil
}

func newTestServer(t *testing.T, uc uc) *router.Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  maintenance:\n    endpoints: []\n"))
	require.NoError(t, err)

	r := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       stubUUID{},
		JWT:        authJWT{},
		Instrument: instrument.NewNoop(),
	})
	RegisterHTTPEndpoint(r, uc)
	return r
}

type stubUUID struct{}

func (stubUUID) Generate() string { return "cid" }

func postJSON(r *router.Router, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	uc := &fakeUC{}
	r := newTestServer(t, uc)

	rec := postJSON(r, "/api/v1/account/register",
		`{"email":"jane@example.com","password":"supersecret","full_name":"Jane Doe"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OTP sent to email. Please verify your account.", body.Message)

	require.NotNil(t, uc.registerIn)
	assert.Equal(t, "jane@example.com", uc.registerIn.Email)
	assert.Equal(t, "Jane Doe", uc.registerIn.FullName)
}

func TestRegisterEndpointConflict(t *testing.T) {
	uc := &fakeUC{registerErr: goerror.NewBusiness("User already exists with this email!", goerror.CodeConflict)}
	r := newTestServer(t, uc)

	rec := postJSON(r, "/api/v1/account/register",
		`{"email":"jane@example.com","password":"supersecret","full_name":"Jane Doe"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User already exists with this email!", body.Message)
}

func TestLoginEndpoint(t *testing.T) {
	uc := &fakeUC{loginOut: &usecase.LoginOutput{
		ID:           7,
		Email:        "jane@example.com",
		FullName:     "Jane Doe",
		AccessToken:  "access",
		RefreshToken: "refresh",
	}}
	r := newTestServer(t, uc)

	rec := postJSON(r, "/api/v1/account/login",
		`{"email":"jane@example.com","password":"supersecret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string        `json:"message"`
		Data    LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User logged in successfully!", body.Message)
	assert.Equal(t, "access", body.Data.AccessToken)
	assert.Equal(t, int64(7), body.Data.ID)
}

func TestProfileEndpoint(t *testing.T) {
	uc := &fakeUC{profileOut: &usecase.ProfileOutput{
		ID:        7,
		Email:     "jane@example.com",
		FullName:  "Jane Doe",
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}}
	r := newTestServer(t, uc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/profile", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data ProfileResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "jane@example.com", body.Data.Email)
}

func TestProfileEndpointUnauthenticated(t *testing.T) {
	r := newTestServer(t, &fakeUC{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/account/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSellerVerifyEndpoint(t *testing.T) {
	r := newTestServer(t, &fakeUC{})

	rec := postJSON(r, "/api/v1/account/seller/verify",
		`{"email":"shop@example.com","code":"1234","password":"supersecret","full_name":"Acme Traders","phone_number":"+971501234567","country":"AE"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string               `json:"message"`
		Data    SellerVerifyResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Seller registered successfully", body.Message)
	assert.Equal(t, "+971501234567", body.Data.Phone)
}

func TestPasswordResetEndpoint(t *testing.T) {
	uc := &fakeUC{}
	r := newTestServer(t, uc)

	rec := postJSON(r, "/api/v1/account/password/reset",
		`{"email":"jane@example.com","new_password":"brandnewsecret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Password reset successfully!", body.Message)

	require.NotNil(t, uc.passwordReset)
	assert.Equal(t, "brandnewsecret", uc.passwordReset.NewPassword)
}

func TestSellerLoginEndpoint(t *testing.T) {
	uc := &fakeUC{sellerLogin: &usecase.SellerLoginOutput{
		ID:           21,
		Email:        "shop@example.com",
		FullName:     "Acme Traders",
		AccessToken:  "access",
		RefreshToken: "refresh",
	}}
	r := newTestServer(t, uc)

	rec := postJSON(r, "/api/v1/account/seller/login",
		`{"email":"shop@example.com","password":"supersecret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string              `json:"message"`
		Data    SellerLoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Seller logged in successfully!", body.Message)
	assert.Equal(t, "access", body.Data.AccessToken)
	assert.Equal(t, int64(21), body.Data.ID)
}

func TestSellerLoginEndpointRejected(t *testing.T) {
	r := newTestServer(t, &fakeUC{})

	rec := postJSON(r, "/api/v1/account/seller/login",
		`{"email":"shop@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid email or password!", body.Message)
}

func TestSellerProfileEndpoint(t *testing.T) {
	uc := &fakeUC{sellerProfile: &usecase.SellerProfileOutput{
		ID:        21,
		Email:     "shop@example.com",
		FullName:  "Acme Traders",
		Phone:     "+971501234567",
		Country:   "AE",
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}}
	r := newTestServer(t, uc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/seller/profile", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data SellerProfileResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "shop@example.com", body.Data.Email)
	assert.Equal(t, "AE", body.Data.Country)
}

func TestSellerProfileEndpointUnauthenticated(t *testing.T) {
	r := newTestServer(t, &fakeUC{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/account/seller/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
