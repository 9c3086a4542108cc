// Package identity derives the actor for a request from a validated
// credential. The Identity value is immutable for the lifetime of one
// logical operation and is the sole basis for every downstream
// authorization decision — no component re-derives role or country
// from the data store.
package identity

import (
	"fmt"
	"time"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated actor: who they are, what they may do,
// and which country scopes their view of the catalog.
type Identity struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Role    models.Role    `json:"role"`
	Country models.Country `json:"country"`
}

// IsAdmin reports whether the actor bypasses country and ownership checks.
func (id Identity) IsAdmin() bool {
	return id.Role == models.RoleAdmin
}

// Verifier turns an opaque credential into an Identity.
type Verifier interface {
	VerifyCredential(token string) (Identity, error)
}

// Issuer mints a credential for a user after registration or login.
type Issuer interface {
	IssueCredential(user *models.User) (string, error)
}

type claims struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Role    models.Role    `json:"role"`
	Country models.Country `json:"country"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256-signed tokens carrying the identity claims.
type JWT struct {
	secret []byte
	ttl    time.Duration
}

func NewJWT(secret []byte, ttl time.Duration) *JWT {
	return &JWT{secret: secret, ttl: ttl}
}

// IssueCredential creates a signed token for a given user.
func (j *JWT) IssueCredential(user *models.User) (string, error) {
	now := time.Now()
	c := claims{
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Country: user.Country,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(j.secret)
}

// VerifyCredential validates the token signature and expiry and returns
// the Identity it carries.
func (j *JWT) VerifyCredential(tokenStr string) (Identity, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenStr, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("%w: invalid or expired token", apperrors.ErrUnauthenticated)
	}
	if !c.Role.Valid() || !c.Country.Valid() {
		return Identity{}, fmt.Errorf("%w: malformed claims", apperrors.ErrUnauthenticated)
	}
	return Identity{
		ID:      c.Subject,
		Name:    c.Name,
		Email:   c.Email,
		Role:    c.Role,
		Country: c.Country,
	}, nil
}
