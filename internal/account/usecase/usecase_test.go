package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/souqhq/souq/internal/account/entity"
	"github.com/souqhq/souq/internal/pkg/goerror"
	"github.com/souqhq/souq/internal/pkg/goroutine"
	"github.com/souqhq/souq/internal/pkg/hash"
	"github.com/souqhq/souq/internal/pkg/instrument"
	"github.com/souqhq/souq/internal/pkg/jwt"
	"github.com/souqhq/souq/internal/pkg/otpguard"
	"github.com/souqhq/souq/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeDB struct {
	users   map[string]*entity.User
	sellers map[string]*entity.Seller

	createdUsers   []entity.NewUser
	createdSellers []entity.NewSeller
	updatedHash    map[int64]string

	getErr    error
	createErr error
	updateErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:       make(map[string]*entity.User),
		sellers:     make(map[string]*entity.Seller),
		updatedHash: make(map[int64]string),
	}
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	u, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return u, nil
}

func (f *fakeDB) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) GetSellerByEmail(_ context.Context, email string) (*entity.Seller, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	s, ok := f.sellers[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return s, nil
}

func (f *fakeDB) GetSellerByID(_ context.Context, id int64) (*entity.Seller, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	for _, sl := range f.sellers {
		if sl.ID == id {
			return sl, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) CreateUser(_ context.Context, in entity.NewUser) error {
	if f.createErr != nil {
		return f.createErr
	}

	if _, ok := f.users[in.Email]; ok {
		return goerror.ErrConflict
	}

	f.createdUsers = append(f.createdUsers, in)
	f.users[in.Email] = &entity.User{
		ID:       in.ID,
		Email:    in.Email,
		FullName: in.FullName,
		Password: in.Password,
	}
	return nil
}

func (f *fakeDB) CreateSeller(_ context.Context, in entity.NewSeller) error {
	if f.createErr != nil {
		return f.createErr
	}

	if _, ok := f.sellers[in.Email]; ok {
		return goerror.ErrConflict
	}

	f.createdSellers = append(f.createdSellers, in)
	f.sellers[in.Email] = &entity.Seller{
		ID:       in.ID,
		Email:    in.Email,
		FullName: in.FullName,
		Password: in.Password,
		Phone:    in.Phone,
		Country:  in.Country,
	}
	return nil
}

func (f *fakeDB) UpdateUserPassword(_ context.Context, id int64, hashed string) error {
	if f.updateErr != nil {
		return f.updateErr
	}

	f.updatedHash[id] = hashed
	return nil
}

type fakeMQ struct {
	registered []AccountRegisteredEvent
	resets     []PasswordResetEvent
	err        error
}

func (f *fakeMQ) PublishAccountRegistered(_ context.Context, msg AccountRegisteredEvent) error {
	if f.err != nil {
		return f.err
	}
	f.registered = append(f.registered, msg)
	return nil
}

func (f *fakeMQ) PublishPasswordReset(_ context.Context, msg PasswordResetEvent) error {
	if f.err != nil {
		return f.err
	}
	f.resets = append(f.resets, msg)
	return nil
}

type fakeGuard struct {
	calls      []string
	dispatches []otpguard.Dispatch

	checkErr  error
	trackErr  error
	issueErr  error
	verifyErr error
}

func (f *fakeGuard) CheckRestrictions(_ context.Context, identity string) error {
	f.calls = append(f.calls, "check:"+identity)
	return f.checkErr
}

func (f *fakeGuard) TrackRequest(_ context.Context, identity string) error {
	f.calls = append(f.calls, "track:"+identity)
	return f.trackErr
}

func (f *fakeGuard) Issue(_ context.Context, identity string, d otpguard.Dispatch) error {
	f.calls = append(f.calls, "issue:"+identity)
	f.dispatches = append(f.dispatches, d)
	return f.issueErr
}

func (f *fakeGuard) Verify(_ context.Context, identity, candidate string) error {
	f.calls = append(f.calls, "verify:"+identity+":"+candidate)
	return f.verifyErr
}

type fakeJWT struct {
	prefix    string
	verifyErr error
	claims    jwt.Claims
}

func (f *fakeJWT) Generate(uid int64, email, role string) (string, error) {
	return fmt.Sprintf("%s-%d-%s-%s", f.prefix, uid, email, role), nil
}

func (f *fakeJWT) Verify(string) (jwt.Claims, error) {
	if f.verifyErr != nil {
		return jwt.Claims{}, f.verifyErr
	}
	return f.claims, nil
}

type fixedID struct{ v int64 }

func (f fixedID) Generate() int64 { return f.v }

type fixture struct {
	uc    *Usecase
	db    *fakeDB
	mq    *fakeMQ
	guard *fakeGuard
	jwt   *fakeJWT
	rjwt  *fakeJWT
	gr    *goroutine.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	f := &fixture{
		db:    newFakeDB(),
		mq:    &fakeMQ{},
		guard: &fakeGuard{},
		jwt:   &fakeJWT{prefix: "access"},
		rjwt:  &fakeJWT{prefix: "refresh"},
		gr:    goroutine.NewManager(4),
	}

	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoMessaging: f.mq,
		Guard:         f.guard,
		Validator:     v,
		Bcrypt:        hash.NewBcrypt(bcrypt.MinCost, ""),
		UID:           fixedID{v: 42},
		JWT:           f.jwt,
		RefreshJWT:    f.rjwt,
		Goroutine:     f.gr,
		Instrument:    instrument.NewNoop(),
	})

	return f
}

// waitPublishes blocks until background event publishing settles.
func (f *fixture) waitPublishes() {
	f.gr.Wait() //nolint:errcheck // publish errors are asserted via fakeMQ
}

func (f *fixture) seedUser(t *testing.T, email, password string) *entity.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &entity.User{ID: 7, Email: email, FullName: "Jane Doe", Password: string(hashed)}
	f.db.users[email] = u
	return u
}

func (f *fixture) seedSeller(t *testing.T, email, password string) *entity.Seller {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	sl := &entity.Seller{
		ID:       21,
		Email:    email,
		FullName: "Sam Seller",
		Password: string(hashed),
		Phone:    "+4915123456789",
		Country:  "Germany",
	}
	f.db.sellers[email] = sl
	return sl
}

func TestRegister(t *testing.T) {
	t.Run("dispatches activation code", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.Register(context.Background(), RegisterInput{
			Email:    "  Jane@Example.COM ",
			Password: "supersecret",
			FullName: "Jane Doe",
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"check:jane@example.com",
			"track:jane@example.com",
			"issue:jane@example.com",
		}, f.guard.calls)
		require.Len(t, f.guard.dispatches, 1)
		assert.Equal(t, "user-activation", f.guard.dispatches[0].Template)
		assert.Equal(t, "Jane Doe", f.guard.dispatches[0].Name)
	})

	t.Run("rejects existing user", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "jane@example.com", "supersecret")

		err := f.uc.Register(context.Background(), RegisterInput{
			Email:    "jane@example.com",
			Password: "supersecret",
			FullName: "Jane Doe",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "User already exists with this email!", gerr.Msg())
		assert.Equal(t, goerror.CodeConflict, gerr.Code())
		assert.Empty(t, f.guard.calls)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.Register(context.Background(), RegisterInput{
			Email:    "not-an-email",
			Password: "short",
			FullName: "J4n3",
		})
		require.Error(t, err)
		assert.Empty(t, f.guard.calls)
	})

	t.Run("maps guard denials to user messages", func(t *testing.T) {
		cases := []struct {
			guardErr error
			msg      string
			code     goerror.Code
		}{
			{otpguard.ErrCooldown, "Please wait 1 minute before requesting a new OTP!", goerror.CodeTooManyRequest},
			{otpguard.ErrTooManyRequests, "Too many OTP requests , please try again after 1 hour", goerror.CodeTooManyRequest},
			{otpguard.ErrAccountLocked, "Account is locked due to multiple attempts! try after 30 minutes", goerror.CodeForbidden},
		}

		for _, tc := range cases {
			f := newFixture(t)
			f.guard.checkErr = tc.guardErr

			err := f.uc.Register(context.Background(), RegisterInput{
				Email:    "jane@example.com",
				Password: "supersecret",
				FullName: "Jane Doe",
			})

			var gerr *goerror.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tc.msg, gerr.Msg())
			assert.Equal(t, tc.code, gerr.Code())
		}
	})

	t.Run("dispatch failure is a server error", func(t *testing.T) {
		f := newFixture(t)
		f.guard.issueErr = &otpguard.DispatchError{Err: errors.New("smtp down")}

		err := f.uc.Register(context.Background(), RegisterInput{
			Email:    "jane@example.com",
			Password: "supersecret",
			FullName: "Jane Doe",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeInternal, gerr.Code())
	})
}

func TestRegisterVerify(t *testing.T) {
	t.Run("creates account on valid code", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
			Email:    "Jane@Example.com",
			Code:     "1234",
			Password: "supersecret",
			FullName: "Jane Doe",
		})
		require.NoError(t, err)

		require.Len(t, f.db.createdUsers, 1)
		created := f.db.createdUsers[0]
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, "jane@example.com", created.Email)
		assert.NotEqual(t, "supersecret", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("supersecret")))

		f.waitPublishes()
		require.Len(t, f.mq.registered, 1)
		assert.Equal(t, "user", f.mq.registered[0].Kind)
		assert.Equal(t, int64(42), f.mq.registered[0].AccountID)
	})

	t.Run("wrong code reports remaining attempts", func(t *testing.T) {
		f := newFixture(t)
		f.guard.verifyErr = &otpguard.InvalidCodeError{Remaining: 2}

		err := f.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
			Email:    "jane@example.com",
			Code:     "9999",
			Password: "supersecret",
			FullName: "Jane Doe",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Invalid OTP! You have 2 attempts left.", gerr.Msg())
		assert.Empty(t, f.db.createdUsers)
	})

	t.Run("expired code", func(t *testing.T) {
		f := newFixture(t)
		f.guard.verifyErr = otpguard.ErrExpired

		err := f.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
			Email:    "jane@example.com",
			Code:     "1234",
			Password: "supersecret",
			FullName: "Jane Doe",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Invalid or Expired OTP!", gerr.Msg())
		assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
	})

	t.Run("lockout after repeated failures", func(t *testing.T) {
		f := newFixture(t)
		f.guard.verifyErr = otpguard.ErrLockedOut

		err := f.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
			Email:    "jane@example.com",
			Code:     "1234",
			Password: "supersecret",
			FullName: "Jane Doe",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Too many incorrect attempts. Your account is locked for 30 minutes!", gerr.Msg())
	})

	t.Run("publish failure does not fail registration", func(t *testing.T) {
		f := newFixture(t)
		f.mq.err = errors.New("broker down")

		err := f.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
			Email:    "jane@example.com",
			Code:     "1234",
			Password: "supersecret",
			FullName: "Jane Doe",
		})
		require.NoError(t, err)
		require.Len(t, f.db.createdUsers, 1)
		f.waitPublishes()
		assert.Empty(t, f.mq.registered)
	})
}

func TestLogin(t *testing.T) {
	t.Run("returns tokens on valid credentials", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "jane@example.com", "supersecret")

		out, err := f.uc.Login(context.Background(), LoginInput{
			Email:    "Jane@Example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(7), out.ID)
		assert.Equal(t, "access-7-jane@example.com-user", out.AccessToken)
		assert.Equal(t, "refresh-7-jane@example.com-user", out.RefreshToken)
	})

	t.Run("unknown email and wrong password share one message", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "jane@example.com", "supersecret")

		for _, in := range []LoginInput{
			{Email: "nobody@example.com", Password: "supersecret"},
			{Email: "jane@example.com", Password: "wrongpassword"},
		} {
			_, err := f.uc.Login(context.Background(), in)

			var gerr *goerror.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, "Invalid email or password!", gerr.Msg())
			assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
		}
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("exchanges refresh token for access token", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "jane@example.com", "supersecret")
		f.rjwt.claims = jwt.Claims{UserID: 7, UserEmail: "jane@example.com", Role: "user"}

		out, err := f.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "refresh-token"})
		require.NoError(t, err)
		assert.Equal(t, "access-7-jane@example.com-user", out.AccessToken)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		f := newFixture(t)
		f.rjwt.verifyErr = jwt.ErrInvalidToken

		_, err := f.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "bogus"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
	})

	t.Run("rejects token for removed account", func(t *testing.T) {
		f := newFixture(t)
		f.rjwt.claims = jwt.Claims{UserID: 99, UserEmail: "gone@example.com", Role: "user"}

		_, err := f.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "refresh-token"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
	})

	t.Run("keeps the seller scope on the new access token", func(t *testing.T) {
		f := newFixture(t)
		f.seedSeller(t, "sam@example.com", "supersecret")
		f.rjwt.claims = jwt.Claims{UserID: 21, UserEmail: "sam@example.com", Role: "seller"}

		out, err := f.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "refresh-token"})
		require.NoError(t, err)
		assert.Equal(t, "access-21-sam@example.com-seller", out.AccessToken)
	})

	t.Run("rejects seller token for removed seller", func(t *testing.T) {
		f := newFixture(t)
		f.rjwt.claims = jwt.Claims{UserID: 99, UserEmail: "gone@example.com", Role: "seller"}

		_, err := f.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "refresh-token"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
	})
}

func TestProfile(t *testing.T) {
	t.Run("returns the authenticated account", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "jane@example.com", "supersecret")

		ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: 7, UserEmail: "jane@example.com", Role: "user"})
		out, err := f.uc.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", out.Email)
		assert.Equal(t, "Jane Doe", out.FullName)
	})

	t.Run("rejects missing auth", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Profile(context.Background())

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
	})

	t.Run("rejects seller scoped token", func(t *testing.T) {
		f := newFixture(t)
		f.seedSeller(t, "sam@example.com", "supersecret")

		ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: 21, UserEmail: "sam@example.com", Role: "seller"})
		_, err := f.uc.Profile(ctx)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
	})
}

func TestPasswordForgot(t *testing.T) {
	t.Run("dispatches reset code for known user", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "jane@example.com", "supersecret")

		err := f.uc.PasswordForgot(context.Background(), PasswordForgotInput{Email: "jane@example.com"})
		require.NoError(t, err)

		require.Len(t, f.guard.dispatches, 1)
		assert.Equal(t, "forgot-password", f.guard.dispatches[0].Template)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.PasswordForgot(context.Background(), PasswordForgotInput{Email: "nobody@example.com"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "User not found!", gerr.Msg())
		assert.Equal(t, goerror.CodeNotFound, gerr.Code())
		assert.Empty(t, f.guard.calls)
	})
}

func TestPasswordForgotVerify(t *testing.T) {
	f := newFixture(t)

	err := f.uc.PasswordForgotVerify(context.Background(), PasswordForgotVerifyInput{
		Email: "jane@example.com",
		Code:  "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"verify:jane@example.com:1234"}, f.guard.calls)
}

func TestPasswordReset(t *testing.T) {
	t.Run("updates the password and announces it", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "jane@example.com", "supersecret")

		err := f.uc.PasswordReset(context.Background(), PasswordResetInput{
			Email:       "jane@example.com",
			NewPassword: "brandnewsecret",
		})
		require.NoError(t, err)

		hashed, ok := f.db.updatedHash[7]
		require.True(t, ok)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("brandnewsecret")))

		f.waitPublishes()
		require.Len(t, f.mq.resets, 1)
		assert.Equal(t, int64(7), f.mq.resets[0].AccountID)
	})

	t.Run("rejects reusing the current password", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "jane@example.com", "supersecret")

		err := f.uc.PasswordReset(context.Background(), PasswordResetInput{
			Email:       "jane@example.com",
			NewPassword: "supersecret",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "New password cannot be same as old password", gerr.Msg())
		assert.Empty(t, f.db.updatedHash)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.PasswordReset(context.Background(), PasswordResetInput{
			Email:       "nobody@example.com",
			NewPassword: "brandnewsecret",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "User not found!", gerr.Msg())
	})
}

func TestSellerRegister(t *testing.T) {
	t.Run("dispatches seller activation code", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.SellerRegister(context.Background(), SellerRegisterInput{
			Email:    "shop@example.com",
			Password: "supersecret",
			FullName: "Acme Traders",
			Phone:    "+971501234567",
			Country:  "AE",
		})
		require.NoError(t, err)

		require.Len(t, f.guard.dispatches, 1)
		assert.Equal(t, "seller-activation", f.guard.dispatches[0].Template)
	})

	t.Run("rejects existing seller", func(t *testing.T) {
		f := newFixture(t)
		f.db.sellers["shop@example.com"] = &entity.Seller{ID: 3, Email: "shop@example.com"}

		err := f.uc.SellerRegister(context.Background(), SellerRegisterInput{
			Email:    "shop@example.com",
			Password: "supersecret",
			FullName: "Acme Traders",
			Phone:    "+971501234567",
			Country:  "AE",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Seller already exists with this email!", gerr.Msg())
	})
}

func TestSellerVerify(t *testing.T) {
	t.Run("creates the seller on valid code", func(t *testing.T) {
		f := newFixture(t)

		out, err := f.uc.SellerVerify(context.Background(), SellerVerifyInput{
			Email:    "shop@example.com",
			Code:     "1234",
			Password: "supersecret",
			FullName: "Acme Traders",
			Phone:    "+971501234567",
			Country:  "AE",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(42), out.ID)
		assert.Equal(t, "+971501234567", out.Phone)
		assert.Equal(t, "AE", out.Country)

		require.Len(t, f.db.createdSellers, 1)
		f.waitPublishes()
		require.Len(t, f.mq.registered, 1)
		assert.Equal(t, "seller", f.mq.registered[0].Kind)
	})

	t.Run("wrong code leaves no seller row", func(t *testing.T) {
		f := newFixture(t)
		f.guard.verifyErr = &otpguard.InvalidCodeError{Remaining: 1}

		_, err := f.uc.SellerVerify(context.Background(), SellerVerifyInput{
			Email:    "shop@example.com",
			Code:     "0000",
			Password: "supersecret",
			FullName: "Acme Traders",
			Phone:    "+971501234567",
			Country:  "AE",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Invalid OTP! You have 1 attempts left.", gerr.Msg())
		assert.Empty(t, f.db.createdSellers)
	})
}

func TestSellerLogin(t *testing.T) {
	t.Run("returns seller scoped tokens on valid credentials", func(t *testing.T) {
		f := newFixture(t)
		f.seedSeller(t, "sam@example.com", "supersecret")

		out, err := f.uc.SellerLogin(context.Background(), SellerLoginInput{
			Email:    "Sam@Example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(21), out.ID)
		assert.Equal(t, "Sam Seller", out.FullName)
		assert.Equal(t, "access-21-sam@example.com-seller", out.AccessToken)
		assert.Equal(t, "refresh-21-sam@example.com-seller", out.RefreshToken)
	})

	t.Run("unknown email and wrong password share one message", func(t *testing.T) {
		f := newFixture(t)
		f.seedSeller(t, "sam@example.com", "supersecret")

		for _, in := range []SellerLoginInput{
			{Email: "nobody@example.com", Password: "supersecret"},
			{Email: "sam@example.com", Password: "wrongpassword"},
		} {
			_, err := f.uc.SellerLogin(context.Background(), in)

			var gerr *goerror.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, "Invalid email or password!", gerr.Msg())
			assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
		}
	})

	t.Run("user credentials do not open a seller session", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "jane@example.com", "supersecret")

		_, err := f.uc.SellerLogin(context.Background(), SellerLoginInput{
			Email:    "jane@example.com",
			Password: "supersecret",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
	})
}

func TestSellerProfile(t *testing.T) {
	t.Run("returns the authenticated seller", func(t *testing.T) {
		f := newFixture(t)
		f.seedSeller(t, "sam@example.com", "supersecret")

		ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: 21, UserEmail: "sam@example.com", Role: "seller"})
		out, err := f.uc.SellerProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "sam@example.com", out.Email)
		assert.Equal(t, "Sam Seller", out.FullName)
		assert.Equal(t, "+4915123456789", out.Phone)
		assert.Equal(t, "Germany", out.Country)
	})

	t.Run("rejects missing auth", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.SellerProfile(context.Background())

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
	})

	t.Run("rejects user scoped token", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, "jane@example.com", "supersecret")

		ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: 7, UserEmail: "jane@example.com", Role: "user"})
		_, err := f.uc.SellerProfile(ctx)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
	})
}
