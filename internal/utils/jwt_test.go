package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	in := TokenClaims{
		UserID:         42,
		Name:           "Sara",
		Email:          "sara@example.com",
		Role:           "moderator",
		ProfilePicture: "https://cdn.example.com/p/42.png",
		Location:       "Cairo",
	}
	tok, err := NewAccessToken(testSecret, in, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	out, err := ParseAccessToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestAccessTokenOptionalClaimsOmitted(t *testing.T) {
	in := TokenClaims{UserID: 7, Name: "Omar", Email: "omar@example.com", Role: "user"}
	tok, err := NewAccessToken(testSecret, in, 15)
	require.NoError(t, err)

	out, err := ParseAccessToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Empty(t, out.ProfilePicture)
	assert.Empty(t, out.Location)
	assert.Equal(t, in.Email, out.Email)
	assert.Equal(t, in.Role, out.Role)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	tok, err := NewAccessToken(testSecret, TokenClaims{UserID: 1, Role: "user"}, 15)
	require.NoError(t, err)

	_, err = ParseAccessToken("other-secret", tok.Token)
	assert.Error(t, err)
}

func TestParseAccessTokenExpired(t *testing.T) {
	tok, err := NewAccessToken(testSecret, TokenClaims{UserID: 1, Role: "user"}, -1)
	require.NoError(t, err)

	_, err = ParseAccessToken(testSecret, tok.Token)
	assert.Error(t, err)
}

func TestParseAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken(testSecret, "not.a.token")
	assert.Error(t, err)
}
