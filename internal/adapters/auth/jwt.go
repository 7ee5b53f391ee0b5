package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// claims is the token payload. Field names match what API clients decode.
type claims struct {
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	UserName string `json:"username"`
	OrgID    string `json:"orgId,omitempty"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 access tokens.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTIssuer creates an issuer that signs with secret and stamps tokens
// with issuer and an expiry of ttl.
func NewJWTIssuer(secret, issuer string, ttl time.Duration) *JWTIssuer {
	i := &JWTIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
	i.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return i.now() }),
	)
	return i
}

// Issue implements ports.TokenIssuer.
func (i *JWTIssuer) Issue(p domain.Principal) (string, error) {
	now := i.now()
	c := claims{
		UserID:   p.UserID,
		Role:     string(p.Role),
		UserName: p.UserName,
		OrgID:    p.OrgID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify implements ports.TokenIssuer.
func (i *JWTIssuer) Verify(token string) (*domain.Principal, error) {
	if token == "" {
		return nil, fmt.Errorf("verify token: missing: %w", domain.ErrUnauthorized)
	}

	var c claims
	_, err := i.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return i.secret, nil
	})
	if err != nil {
		reason := "invalid"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "expired"
		}
		return nil, fmt.Errorf("verify token: %s: %w", reason, errors.Join(domain.ErrUnauthorized, err))
	}

	if c.UserID == "" || !domain.Role(c.Role).IsValid() {
		return nil, fmt.Errorf("verify token: incomplete claims: %w", domain.ErrUnauthorized)
	}
	return &domain.Principal{
		UserID:   c.UserID,
		Role:     domain.Role(c.Role),
		UserName: c.UserName,
		OrgID:    c.OrgID,
	}, nil
}
