package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/platefeed/server/internal/errs"
	"github.com/platefeed/server/internal/model"
)

// Identity tables, one per kind. The table name is interpolated into
// the query text; it never comes from request input.
const (
	TableUsers        = "users"
	TableFoodPartners = "food_partners"
)

// IdentityRepo implements IdentityRepository using PostgreSQL, bound to
// one identity table at construction time.
type IdentityRepo struct {
	db    *DB
	table string
}

// NewIdentityRepo constructs an identity repository over the given table.
func NewIdentityRepo(db *DB, table string) *IdentityRepo {
	return &IdentityRepo{db: db, table: table}
}

// Create inserts a new identity row. A duplicate email surfaces as
// ErrAlreadyExists via the table's unique index.
func (r *IdentityRepo) Create(ctx context.Context, id *model.Identity) error {
	q := fmt.Sprintf(`
INSERT INTO %s (id, full_name, email, pwd_hash)
VALUES ($1, $2, $3, $4)`, r.table)
	_, err := r.db.Pool.Exec(ctx, q, id.ID, id.FullName, id.Email, id.PasswordHash)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// GetByEmail selects an identity by email.
func (r *IdentityRepo) GetByEmail(ctx context.Context, email string) (*model.Identity, error) {
	q := fmt.Sprintf(`
SELECT id, full_name, email, pwd_hash, created_at
FROM %s WHERE email=$1`, r.table)
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, email))
}

// GetByID selects an identity by ID.
func (r *IdentityRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Identity, error) {
	q := fmt.Sprintf(`
SELECT id, full_name, email, pwd_hash, created_at
FROM %s WHERE id=$1`, r.table)
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id))
}

func (r *IdentityRepo) scanOne(row interface{ Scan(dest ...any) error }) (*model.Identity, error) {
	var id model.Identity
	if err := row.Scan(&id.ID, &id.FullName, &id.Email, &id.PasswordHash, &id.CreatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &id, nil
}
