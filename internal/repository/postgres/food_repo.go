package postgres

import (
	"context"

	"github.com/platefeed/server/internal/model"
)

// FoodRepo implements FoodRepository using PostgreSQL.
type FoodRepo struct{ db *DB }

// NewFoodRepo constructs a food repository.
func NewFoodRepo(db *DB) *FoodRepo { return &FoodRepo{db: db} }

// Create inserts a new food item row.
func (r *FoodRepo) Create(ctx context.Context, it *model.FoodItem) error {
	const q = `
INSERT INTO food_items (id, name, description, video_url, partner_id)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, it.ID, it.Name, it.Description, it.VideoURL, it.PartnerID)
	return err
}

// List returns every food item, newest first. The catalog endpoint is
// deliberately unfiltered and unpaginated.
func (r *FoodRepo) List(ctx context.Context) ([]model.FoodItem, error) {
	const q = `
SELECT id, name, description, video_url, partner_id, created_at
FROM food_items ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.FoodItem
	for rows.Next() {
		var it model.FoodItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.VideoURL, &it.PartnerID, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
