package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasteofindiazambia/backend/entity"
	"github.com/tasteofindiazambia/backend/repository"
)

func TestFullMenu_GroupsAvailableItems(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db)
	cat, items := seedMenu(t, db, rest)

	svc := NewMenuService(repository.NewMenuRepository(db), repository.NewRestaurantRepository(db), nil, 0)

	view, err := svc.FullMenu(context.Background(), rest.ID)
	require.NoError(t, err)
	require.Len(t, view.Categories, 1)
	assert.Equal(t, cat.ID, view.Categories[0].ID)

	// the unavailable Seasonal Special is filtered out
	assert.Len(t, view.Categories[0].Items, 3)
	for _, it := range view.Categories[0].Items {
		assert.True(t, it.Available)
		assert.NotEqual(t, items[3].ID, it.ID)
	}
}

func TestFullMenu_UnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db)
	seedMenu(t, db, rest)

	svc := NewMenuService(repository.NewMenuRepository(db), repository.NewRestaurantRepository(db), nil, 0)

	_, err := svc.FullMenu(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	require.NoError(t, db.Model(&entity.Restaurant{}).
		Where("id = ?", rest.ID).Update("active", false).Error)
	_, err = svc.FullMenu(context.Background(), rest.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestMenuItemUpdate_TogglesAvailability(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db)
	_, items := seedMenu(t, db, rest)

	svc := NewMenuService(repository.NewMenuRepository(db), repository.NewRestaurantRepository(db), nil, 0)

	affected, err := svc.UpdateItem(context.Background(), items[0].ID, rest.ID,
		map[string]any{"available": false})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	view, err := svc.FullMenu(context.Background(), rest.ID)
	require.NoError(t, err)
	assert.Len(t, view.Categories[0].Items, 2)

	var got entity.MenuItem
	require.NoError(t, db.First(&got, items[0].ID).Error)
	assert.False(t, got.Available)
}
