package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/platefeed/server/internal/errs"
	"github.com/platefeed/server/internal/media"
	"github.com/platefeed/server/internal/model"
	"github.com/platefeed/server/internal/repository"
)

// FoodService defines catalog operations.
type FoodService interface {
	// Create uploads the media asset and persists a new food item owned
	// by the given partner.
	Create(ctx context.Context, partnerID uuid.UUID, name, description, contentType string, video io.Reader) (*model.FoodItem, error)
	// List returns the whole catalog.
	List(ctx context.Context) ([]model.FoodItem, error)
}

type FoodServiceImpl struct {
	foods   repository.FoodRepository
	storage media.Storage
}

// NewFoodService constructs FoodService with required dependencies.
func NewFoodService(foods repository.FoodRepository, storage media.Storage) *FoodServiceImpl {
	return &FoodServiceImpl{foods: foods, storage: storage}
}

// Create stores the video under a fresh key, then persists the item
// referencing the returned URL. An upload failure leaves no catalog row.
func (s *FoodServiceImpl) Create(ctx context.Context, partnerID uuid.UUID, name, description, contentType string, video io.Reader) (*model.FoodItem, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, fmt.Errorf("%w: name and description are required", errs.ErrValidation)
	}
	if video == nil {
		return nil, fmt.Errorf("%w: video is required", errs.ErrValidation)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	url, err := s.storage.Upload(ctx, "foods/"+id.String(), contentType, video)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	it := &model.FoodItem{
		ID:          id,
		Name:        name,
		Description: description,
		VideoURL:    url,
		PartnerID:   partnerID,
		CreatedAt:   time.Now(),
	}
	if err := s.foods.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// List returns all food items.
func (s *FoodServiceImpl) List(ctx context.Context) ([]model.FoodItem, error) {
	return s.foods.List(ctx)
}
