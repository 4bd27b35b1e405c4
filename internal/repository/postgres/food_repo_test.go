package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/platefeed/server/internal/model"
)

func TestFoodRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFoodRepo(db)
	ctx := context.Background()
	it := &model.FoodItem{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        "Pasta",
		Description: "fresh",
		VideoURL:    "http://media.local/platefeed-media/foods/x",
		PartnerID:   uuid.Must(uuid.NewV4()),
	}

	mock.ExpectExec(`INSERT INTO food_items \(id, name, description, video_url, partner_id\)`).
		WithArgs(it.ID, it.Name, it.Description, it.VideoURL, it.PartnerID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, it))

	mock.ExpectExec(`INSERT INTO food_items`).
		WithArgs(it.ID, it.Name, it.Description, it.VideoURL, it.PartnerID).
		WillReturnError(errors.New("db down"))
	require.Error(t, r.Create(ctx, it))
}

func TestFoodRepo_List(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFoodRepo(db)
	ctx := context.Background()

	a := uuid.Must(uuid.NewV4())
	b := uuid.Must(uuid.NewV4())
	partner := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT id, name, description, video_url, partner_id, created_at FROM food_items ORDER BY created_at DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "video_url", "partner_id", "created_at"}).
			AddRow(b, "Ramen", "hot", "http://m/b", partner, time.Now()).
			AddRow(a, "Pasta", "fresh", "http://m/a", partner, time.Now().Add(-time.Hour)))
	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Ramen", items[0].Name)
	require.Equal(t, partner, items[1].PartnerID)
}

func TestFoodRepo_List_Empty(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFoodRepo(db)

	mock.ExpectQuery(`SELECT id, name, description, video_url, partner_id, created_at FROM food_items`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "video_url", "partner_id", "created_at"}))
	items, err := r.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}
