// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/platefeed/server/internal/model"
)

// IdentityRepository provides account storage for one identity kind.
// Users and food partners live in disjoint tables, so the server holds
// one instance per kind.
type IdentityRepository interface {
	// Create inserts a new identity.
	Create(ctx context.Context, id *model.Identity) error
	// GetByEmail loads an identity by its (lowercased) email.
	GetByEmail(ctx context.Context, email string) (*model.Identity, error)
	// GetByID loads an identity by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Identity, error)
}
