package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a bearer token can fail verification.
var ErrInvalidToken = errors.New("auth: invalid token")

// Identity is the authenticated caller, extracted from verified token claims.
// The UserID is the token subject, which is also the user's public id.
type Identity struct {
	UserID    string
	FirstName string
	LastName  string
	Email     string
}

type claims struct {
	jwt.RegisteredClaims
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
}

// Verifier validates HMAC-signed bearer tokens issued by the identity
// provider and maps their claims onto an Identity.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Parse verifies the token signature and expiry and returns the identity.
func (v *Verifier) Parse(token string) (Identity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || c.Subject == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{
		UserID:    c.Subject,
		FirstName: c.GivenName,
		LastName:  c.FamilyName,
		Email:     c.Email,
	}, nil
}
