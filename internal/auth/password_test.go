package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret-pass"))
	assert.Error(t, ComparePassword(hash, "wrong-pass"))
}

func TestComparePassword_RejectsEmptyPlain(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)

	assert.Error(t, ComparePassword(hash, ""))
}

func TestComparePassword_RejectsNonBcryptStored(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{name: "plaintext leak", stored: "s3cret-pass"},
		{name: "empty stored value", stored: ""},
		{name: "truncated hash", stored: "$2a$10$abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ComparePassword(tt.stored, "s3cret-pass"))
		})
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
