package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var secret = []byte(os.Getenv("JWT_SECRET"))

// Claims is what the host asserts about the session: who the viewer is and
// the advisory privilege hints. The role string and the account-owner flag
// both grant privilege; neither one overrides the other.
type Claims struct {
	UserID       string
	Role         string
	AccountOwner bool
}

// Privileged reports whether the viewer may be offered mutation operations.
// This is a hint from the host, not a security boundary.
func (c Claims) Privileged() bool {
	return c.Role == "admin" || c.Role == "owner" || c.AccountOwner
}

func GenerateToken(userID, role string, accountOwner bool) (string, error) {
	expiryHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRY_HOURS"))
	claims := jwt.MapClaims{
		"user_id":       userID,
		"role":          role,
		"account_owner": accountOwner,
		"exp":           time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(tokenStr string) (Claims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid claims")
	}

	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, errors.New("invalid claims")
	}

	claims := Claims{UserID: userID}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if owner, ok := mapClaims["account_owner"].(bool); ok {
		claims.AccountOwner = owner
	}
	return claims, nil
}
