// Package identity verifies platform-issued actor tokens. The hosting
// platform owns issuance; this backend only checks the signature and
// extracts the actor id.
package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verifier validates HS256 actor tokens issued by the hosting platform.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a Verifier for the given shared secret and expected
// issuer.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// ValidateToken checks the token and returns the actor id from the subject
// claim.
func (v *Verifier) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, fmt.Errorf("identity: parse token: %w", err)
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("identity: subject claim: %w", err)
	}

	actorID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("identity: subject %q is not a uuid: %w", sub, err)
	}
	return actorID, nil
}
