package auth

import (
	"fmt"
	"time"

	authmodel "medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// JwtAccessGate implements AccessGate using HMAC-signed JWTs. Tokens carry
// the actor's identifier and role; any parse, signature, expiry, or claim
// failure comes back as a forbidden error so callers never leak token
// internals to clients.
type JwtAccessGate struct {
	secret []byte
	ttl    time.Duration
}

// NewJwtAccessGate creates an access gate signing tokens with the given
// secret and lifetime.
func NewJwtAccessGate(secret string, ttl time.Duration) (*JwtAccessGate, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	return &JwtAccessGate{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// IssueToken signs a token for the authenticated actor.
func (g *JwtAccessGate) IssueToken(actor authmodel.Actor) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  actor.ID().String(),
		"role": actor.Role().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(g.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Authenticate verifies a token and reconstructs the actor it was issued to.
func (g *JwtAccessGate) Authenticate(tokenString string) (authmodel.Actor, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return g.secret, nil
	})
	if err != nil {
		return authmodel.Actor{}, errs.NewForbiddenErrorWithCause(err)
	}
	if !token.Valid {
		return authmodel.Actor{}, errs.NewForbiddenError()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authmodel.Actor{}, errs.NewForbiddenError()
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return authmodel.Actor{}, errs.NewForbiddenError()
	}
	roleName, ok := claims["role"].(string)
	if !ok {
		return authmodel.Actor{}, errs.NewForbiddenError()
	}

	id, err := kernel.UUIDFromString(sub)
	if err != nil {
		return authmodel.Actor{}, errs.NewForbiddenErrorWithCause(err)
	}
	role, err := authmodel.RoleFromString(roleName)
	if err != nil {
		return authmodel.Actor{}, errs.NewForbiddenErrorWithCause(err)
	}

	actor, err := authmodel.NewActor(role, id)
	if err != nil {
		return authmodel.Actor{}, errs.NewForbiddenErrorWithCause(err)
	}

	return actor, nil
}
