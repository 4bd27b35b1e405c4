// Package service contains application services for authentication and the food catalog.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/platefeed/server/internal/crypto"
	"github.com/platefeed/server/internal/errs"
	"github.com/platefeed/server/internal/limiter"
	"github.com/platefeed/server/internal/model"
	"github.com/platefeed/server/internal/repository"
	"github.com/platefeed/server/internal/token"
)

// AuthService defines registration, sign-in and token resolution for both
// identity kinds.
type AuthService interface {
	// Register creates a new identity with secure password hashing and
	// returns it together with a fresh session token.
	Register(ctx context.Context, kind model.Kind, fullName, email, password string) (*model.Identity, model.Session, error)
	// LoginWithIP applies rate limiting and authenticates the identity.
	LoginWithIP(ctx context.Context, kind model.Kind, email, password, ip string) (*model.Identity, model.Session, error)
	// Resolve loads the identity a verified token points at.
	Resolve(ctx context.Context, kind model.Kind, id uuid.UUID) (*model.Identity, error)
	// VerifyToken checks a raw token string against the signing key.
	VerifyToken(tokenStr string, now time.Time) (uuid.UUID, error)
}

type AuthServiceImpl struct {
	users    repository.IdentityRepository
	partners repository.IdentityRepository
	signKey  []byte
	tokenTTL time.Duration
	lim      limiter.Limiter
}

// NewAuthService constructs AuthService with one repository per identity kind.
func NewAuthService(users, partners repository.IdentityRepository, signKey []byte, tokenTTL time.Duration, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, partners: partners, signKey: signKey, tokenTTL: tokenTTL, lim: lim}
}

func (s *AuthServiceImpl) repo(kind model.Kind) repository.IdentityRepository {
	if kind == model.KindFoodPartner {
		return s.partners
	}
	return s.users
}

// NormalizeEmail lowercases and trims an email so uniqueness is
// case-insensitive end to end.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new identity record. A duplicate email surfaces as
// errs.ErrAlreadyExists from the storage-level unique index; there is no
// separate existence pre-check, so concurrent registrations cannot race
// past each other.
func (s *AuthServiceImpl) Register(ctx context.Context, kind model.Kind, fullName, email, password string) (*model.Identity, model.Session, error) {
	fullName = strings.TrimSpace(fullName)
	email = NormalizeEmail(email)
	if fullName == "" || email == "" || password == "" {
		return nil, model.Session{}, fmt.Errorf("%w: full name, email and password are required", errs.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return nil, model.Session{}, fmt.Errorf("%w: malformed email", errs.ErrValidation)
	}
	if len(password) < 6 {
		return nil, model.Session{}, fmt.Errorf("%w: password too short", errs.ErrValidation)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, model.Session{}, err
	}
	hash, err := pkgcrypto.HashPassword(password)
	if err != nil {
		return nil, model.Session{}, err
	}

	ident := &model.Identity{
		ID:           id,
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.repo(kind).Create(ctx, ident); err != nil {
		return nil, model.Session{}, err
	}

	sess, err := s.issueSession(id)
	if err != nil {
		return nil, model.Session{}, err
	}
	return ident, sess, nil
}

// LoginWithIP authenticates with rate limiting by (email, ip). Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, kind model.Kind, email, password, ip string) (*model.Identity, model.Session, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, model.Session{}, errs.ErrUnauthorized
	}

	ipHash := limiter.HashIP(ip)
	allowed, _, err := s.lim.Allow(ctx, email, ipHash)
	if err != nil {
		return nil, model.Session{}, err
	}
	if !allowed {
		return nil, model.Session{}, errs.ErrRateLimited
	}

	ident, err := s.repo(kind).GetByEmail(ctx, email)
	if err != nil || !pkgcrypto.VerifyPassword(password, ident.PasswordHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, email, ipHash); ferr == nil && blocked {
			return nil, model.Session{}, errs.ErrRateLimited
		}
		// lookup errors are masked so the message cannot enumerate accounts
		return nil, model.Session{}, errs.ErrUnauthorized
	}

	_ = s.lim.Success(ctx, email, ipHash)

	sess, err := s.issueSession(ident.ID)
	if err != nil {
		return nil, model.Session{}, err
	}
	return ident, sess, nil
}

// Resolve loads the identity behind a verified token subject. A subject
// that no longer resolves (account removed after issuance) comes back as
// errs.ErrUnauthorized.
func (s *AuthServiceImpl) Resolve(ctx context.Context, kind model.Kind, id uuid.UUID) (*model.Identity, error) {
	ident, err := s.repo(kind).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	return ident, nil
}

// VerifyToken checks the token's signature and expiry against the
// service signing key.
func (s *AuthServiceImpl) VerifyToken(tokenStr string, now time.Time) (uuid.UUID, error) {
	return token.Verify(tokenStr, s.signKey, now)
}

func (s *AuthServiceImpl) issueSession(id uuid.UUID) (model.Session, error) {
	signed, exp, err := token.Issue(id, s.signKey, s.tokenTTL, time.Now())
	if err != nil {
		return model.Session{}, err
	}
	return model.Session{Token: signed, ExpiresAt: exp}, nil
}
