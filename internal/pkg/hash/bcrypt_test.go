package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, "")

	hashed, err := h.Hash("supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", string(hashed))

	assert.True(t, h.Verify(string(hashed), "supersecret"))
	assert.False(t, h.Verify(string(hashed), "wrongpassword"))
}

func TestBcryptPepper(t *testing.T) {
	peppered := NewBcrypt(bcrypt.MinCost, "pepper")
	plain := NewBcrypt(bcrypt.MinCost, "")

	hashed, err := peppered.Hash("supersecret")
	require.NoError(t, err)

	assert.True(t, peppered.Verify(string(hashed), "supersecret"))
	assert.False(t, plain.Verify(string(hashed), "supersecret"))
}
