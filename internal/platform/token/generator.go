// Package token はセッション識別用の署名付きトークンを提供します。
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvKeySessionSecret はトークン署名鍵を保持する環境変数名です。
const EnvKeySessionSecret = "SESSION_JWT_SECRET"

// Generator defines the interface for session token generation.
type Generator interface {
	// Generate creates a signed token carrying the given session ID.
	Generate(sessionID string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new session token generator with the provided secret
// and expiration duration.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Generate creates a signed JWT with the session ID as subject.
func (g *generator) Generate(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(g.expiration).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
