package sessiontoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shahhardik4599/creatively-yours/pkg/config"
)

var (
	secret   []byte
	tokenTTL time.Duration
)

// GuestClaims represents the claims carried by a guest-session token.
// There is no user identity here: the token only names the session that
// owns a cart and customizer state on this server.
type GuestClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Initialize configures the package with the session signing settings
func Initialize(cfg *config.SessionConfig) {
	secret = []byte(cfg.SigningKey)
	tokenTTL = cfg.TokenTTL
}

// Mint creates a signed token for the given session ID
func Mint(sessionID string) (string, error) {
	now := time.Now()
	claims := GuestClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Validate validates and parses a guest-session token
func Validate(tokenString string) (*GuestClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &GuestClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*GuestClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
