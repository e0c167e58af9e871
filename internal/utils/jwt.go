package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// TokenClaims is the identity a signed access token carries. The optional
// profile fields are embedded so storefront clients can render the account
// header without an extra lookup.
type TokenClaims struct {
	UserID         uint64
	Name           string
	Email          string
	Role           string
	ProfilePicture string
	Location       string
}

// AccessToken represents a signed JWT access token along with its expiry.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT embedding the user's
// identity claims. ttlMin controls the token lifetime in minutes.
func NewAccessToken(secret string, tc TokenClaims, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":   tc.UserID,
		"name":  tc.Name,
		"email": tc.Email,
		"role":  tc.Role,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	}
	if tc.ProfilePicture != "" {
		claims["profile_picture"] = tc.ProfilePicture
	}
	if tc.Location != "" {
		claims["location"] = tc.Location
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

var errBadToken = errors.New("invalid token")

// ParseAccessToken validates an HS256 token string and returns the claims
// it carries. Tokens signed with any other method are rejected.
func ParseAccessToken(secret, raw string) (TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errBadToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenClaims{}, errBadToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errBadToken
	}

	var tc TokenClaims
	if sub, ok := claims["sub"].(float64); ok {
		tc.UserID = uint64(sub)
	}
	tc.Name, _ = claims["name"].(string)
	tc.Email, _ = claims["email"].(string)
	tc.Role, _ = claims["role"].(string)
	tc.ProfilePicture, _ = claims["profile_picture"].(string)
	tc.Location, _ = claims["location"].(string)
	if tc.UserID == 0 {
		return TokenClaims{}, errBadToken
	}
	return tc, nil
}
