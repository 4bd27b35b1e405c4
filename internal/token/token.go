// Package token issues and verifies the signed session tokens carried in
// the "token" cookie. Verification is a pure function of (token, key, now)
// so expiry handling is unit-testable without a live server.
package token

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/platefeed/server/internal/errs"
)

// Claims carries the identity's identifier under the "id" claim,
// matching the wire format consumed by existing clients.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Issue creates a signed HS256 token for the given identity, valid for ttl.
func Issue(id uuid.UUID, key []byte, ttl time.Duration, now time.Time) (string, time.Time, error) {
	exp := now.Add(ttl)
	claims := Claims{
		ID: id.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(key)
	return signed, exp, err
}

// Verify checks signature and expiry against the provided clock and
// returns the encoded identity ID. Any failure maps to ErrUnauthorized;
// callers must not distinguish the reasons on the wire.
func Verify(tokenStr string, key []byte, now time.Time) (uuid.UUID, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims,
		func(*jwt.Token) (any, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !tok.Valid {
		return uuid.Nil, errs.ErrUnauthorized
	}
	id, err := uuid.FromString(claims.ID)
	if err != nil {
		return uuid.Nil, errs.ErrUnauthorized
	}
	return id, nil
}
