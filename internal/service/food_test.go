package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/platefeed/server/internal/errs"
	"github.com/platefeed/server/internal/model"
	"github.com/platefeed/server/internal/repository"
)

type fakeFoods struct {
	items     []model.FoodItem
	createErr error
	listErr   error
}

var _ repository.FoodRepository = (*fakeFoods)(nil)

func (f *fakeFoods) Create(_ context.Context, it *model.FoodItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, *it)
	return nil
}

func (f *fakeFoods) List(context.Context) ([]model.FoodItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

type fakeStorage struct {
	lastKey         string
	lastContentType string
	uploads         int
	err             error
}

func (f *fakeStorage) Upload(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	f.uploads++
	f.lastKey = key
	f.lastContentType = contentType
	if f.err != nil {
		return "", f.err
	}
	_, _ = io.Copy(io.Discard, body)
	return "http://media.local/bucket/" + key, nil
}

func TestFoodCreate_OK(t *testing.T) {
	foods := &fakeFoods{}
	store := &fakeStorage{}
	s := NewFoodService(foods, store)
	partnerID := uuid.Must(uuid.NewV4())

	it, err := s.Create(context.Background(), partnerID, "Pasta", "fresh tagliatelle", "video/mp4", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if it.PartnerID != partnerID {
		t.Fatalf("owner mismatch: %s", it.PartnerID)
	}
	if !strings.HasPrefix(store.lastKey, "foods/") || store.lastContentType != "video/mp4" {
		t.Fatalf("upload key/type: %q %q", store.lastKey, store.lastContentType)
	}
	if it.VideoURL != "http://media.local/bucket/"+store.lastKey {
		t.Fatalf("video url: %q", it.VideoURL)
	}
	if len(foods.items) != 1 {
		t.Fatalf("item not persisted")
	}
}

func TestFoodCreate_Validation_NoUpload(t *testing.T) {
	store := &fakeStorage{}
	s := NewFoodService(&fakeFoods{}, store)
	ctx := context.Background()
	partnerID := uuid.Must(uuid.NewV4())

	if _, err := s.Create(ctx, partnerID, "", "desc", "video/mp4", strings.NewReader("x")); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation for empty name, got %v", err)
	}
	if _, err := s.Create(ctx, partnerID, "Pasta", "  ", "video/mp4", strings.NewReader("x")); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation for blank description, got %v", err)
	}
	if _, err := s.Create(ctx, partnerID, "Pasta", "desc", "video/mp4", nil); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation for nil video, got %v", err)
	}
	if store.uploads != 0 {
		t.Fatalf("upload must not run on validation failure")
	}
}

func TestFoodCreate_UploadFailure_NothingPersisted(t *testing.T) {
	foods := &fakeFoods{}
	s := NewFoodService(foods, &fakeStorage{err: errors.New("bucket gone")})

	_, err := s.Create(context.Background(), uuid.Must(uuid.NewV4()), "Pasta", "desc", "video/mp4", strings.NewReader("x"))
	if err == nil {
		t.Fatalf("want upload error")
	}
	if len(foods.items) != 0 {
		t.Fatalf("item persisted despite upload failure")
	}
}

func TestFoodList_Passthrough(t *testing.T) {
	foods := &fakeFoods{items: []model.FoodItem{{Name: "Ramen"}}}
	s := NewFoodService(foods, &fakeStorage{})

	items, err := s.List(context.Background())
	if err != nil || len(items) != 1 || items[0].Name != "Ramen" {
		t.Fatalf("list: %v %+v", err, items)
	}

	foods.listErr = errors.New("db down")
	if _, err := s.List(context.Background()); err == nil {
		t.Fatalf("want list error")
	}
}
