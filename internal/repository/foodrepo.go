package repository

import (
	"context"

	"github.com/platefeed/server/internal/model"
)

// FoodRepository provides storage for the food catalog.
type FoodRepository interface {
	// Create inserts a new food item.
	Create(ctx context.Context, it *model.FoodItem) error
	// List returns all food items, newest first.
	List(ctx context.Context) ([]model.FoodItem, error)
}
