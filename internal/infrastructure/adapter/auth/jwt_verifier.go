package auth

import (
	"context"
	"fmt"

	domainErr "github.com/ecotrail/ecopoints/internal/domain/error"
	"github.com/ecotrail/ecopoints/internal/domain/port/core"
	"github.com/ecotrail/ecopoints/internal/domain/port/identity"
	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier validates HS256 access tokens locally using a shared secret.
// It is the verification mode for deployments where the identity provider
// signs tokens with a symmetric key.
type JWTVerifier struct {
	secret []byte
	logger core.Logger
}

// NewJWTVerifier creates a verifier for HS256-signed tokens
func NewJWTVerifier(secret string, logger core.Logger) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		logger: logger,
	}
}

// Verify parses and validates the token and extracts the caller identity.
//
// Possible errors:
//   - ErrUnauthenticated: if the token is malformed, expired, signed with the
//     wrong key or carries no subject claim
func (v *JWTVerifier) Verify(ctx context.Context, token string) (*identity.Identity, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		v.logger.Debug("Token validation failed", map[string]any{
			"error": errString(err),
		})
		return nil, domainErr.ErrUnauthenticated
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, domainErr.ErrUnauthenticated
	}

	email, _ := claims["email"].(string)

	return &identity.Identity{
		Subject: subject,
		Email:   email,
	}, nil
}

func errString(err error) string {
	if err == nil {
		return "token marked invalid"
	}
	return err.Error()
}
