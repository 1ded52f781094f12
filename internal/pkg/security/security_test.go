package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.NoError(t, CheckPasswordHash("secret-password", hash))
	assert.Error(t, CheckPasswordHash("wrong-password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, []string{"REVIEW", "USER"})
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, []string{"REVIEW", "USER"}, claims.Roles)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(1, []string{"USER"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA"

	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(7, []string{"USER"})
	require.NoError(t, err)

	signature, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.Equal(t, strings.Split(token, ".")[2], signature)

	_, err = ExtractSignature("not-a-token")
	assert.Error(t, err)
}
