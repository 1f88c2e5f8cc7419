package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

type stubUUID struct{}

func (stubUUID) Generate() string { return "token-id" }

func newTestSymmetric(t *testing.T, clk *stubClock, ttl time.Duration) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:     []byte(strings.Repeat("s", 64)),
		Issuer:     "souq",
		Audiences:  []string{"souq-web"},
		TTLMinutes: ttl,
		Clock:      clk,
		UUID:       stubUUID{},
	})
	require.NoError(t, err)
	return s
}

func TestNewHS512RejectsShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestSymmetricRoundTrip(t *testing.T) {
	clk := &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s := newTestSymmetric(t, clk, 30*time.Minute)

	token, err := s.Generate(7, "jane@example.com", "user")
	require.NoError(t, err)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.UserEmail)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "souq", claims.Issuer)
	assert.Equal(t, "token-id", claims.ID)
}

func TestSymmetricVerifyExpired(t *testing.T) {
	clk := &stubClock{now: time.Now().Add(-time.Hour)}
	s := newTestSymmetric(t, clk, 30*time.Minute)

	token, err := s.Generate(7, "jane@example.com", "user")
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSymmetricVerifyWrongSecret(t *testing.T) {
	clk := &stubClock{now: time.Now()}
	s := newTestSymmetric(t, clk, 30*time.Minute)

	token, err := s.Generate(7, "jane@example.com", "user")
	require.NoError(t, err)

	other, err := NewHS512(Config{
		Secret:     []byte(strings.Repeat("x", 64)),
		Issuer:     "souq",
		Audiences:  []string{"souq-web"},
		TTLMinutes: 30 * time.Minute,
		Clock:      clk,
		UUID:       stubUUID{},
	})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestSymmetricVerifyGarbage(t *testing.T) {
	clk := &stubClock{now: time.Now()}
	s := newTestSymmetric(t, clk, 30*time.Minute)

	_, err := s.Verify("not.a.token")
	assert.Error(t, err)
}
