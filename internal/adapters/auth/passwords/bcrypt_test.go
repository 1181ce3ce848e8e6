package passwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	h, err := b.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", h)

	require.NoError(t, b.Compare(h, "hunter22"))
	assert.ErrorIs(t, b.Compare(h, "hunter23"), ErrMismatch)
}

func TestBcrypt_InvalidCostFallsBackToDefault(t *testing.T) {
	b := NewBcrypt(1)
	assert.Equal(t, bcrypt.DefaultCost, b.cost)
}

func TestBcrypt_CompareMalformedHash(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)
	err := b.Compare("not-a-hash", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}
