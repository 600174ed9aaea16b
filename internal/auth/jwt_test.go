package auth_test

import (
	"os"
	"testing"
	"time"

	"boardform/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// The package captures JWT_SECRET at init, so raw test tokens are signed
// with the same environment value to stay verifiable.
func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	assert.NoError(t, err)
	return signed
}

func TestGenerateAndParseToken(t *testing.T) {
	os.Setenv("JWT_EXPIRY_HOURS", "24")

	// Generate a token carrying the host's role hints
	token, err := auth.GenerateToken("user-1", "admin", false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Parse it back
	claims, err := auth.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.False(t, claims.AccountOwner)
}

func TestParseToken_InvalidToken(t *testing.T) {
	_, err := auth.ParseToken("invalid-token")

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_ExpiredToken(t *testing.T) {
	expired := signTestToken(t, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(-1 * time.Hour).Unix(),
	})

	_, err := auth.ParseToken(expired)

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_MissingUserID(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	})

	_, err := auth.ParseToken(token)

	assert.Error(t, err)
	assert.Equal(t, "invalid claims", err.Error())
}

func TestParseToken_NonStringUserID(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"user_id": 12345,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	_, err := auth.ParseToken(token)

	assert.Error(t, err)
	assert.Equal(t, "invalid claims", err.Error())
}

func TestClaims_Privileged(t *testing.T) {
	assert.True(t, auth.Claims{Role: "admin"}.Privileged())
	assert.True(t, auth.Claims{Role: "owner"}.Privileged())
	assert.True(t, auth.Claims{AccountOwner: true}.Privileged())
	// Either signal alone is enough; both present is still privileged
	assert.True(t, auth.Claims{Role: "admin", AccountOwner: true}.Privileged())
	assert.False(t, auth.Claims{Role: "member"}.Privileged())
	assert.False(t, auth.Claims{}.Privileged())
}
