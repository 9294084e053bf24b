package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tasteofindiazambia/backend/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Customer{},
		&entity.Reservation{},
	))
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{
		Name:                "Taste of India",
		Address:             "Lusaka CBD",
		Active:              true,
		Latitude:            -15.4167,
		Longitude:           28.2833,
		DeliveryFeePerKm:    10,
		DeliveryTimeMinutes: 45,
		MinDeliveryOrder:    150,
		MaxDeliveryRadiusKm: 15,
	}
	require.NoError(t, db.Create(rest).Error)
	return rest
}

func seedMenu(t *testing.T, db *gorm.DB, rest *entity.Restaurant) (*entity.MenuCategory, []entity.MenuItem) {
	t.Helper()
	cat := &entity.MenuCategory{Name: "Mains", RestaurantID: rest.ID}
	require.NoError(t, db.Create(cat).Error)

	items := []entity.MenuItem{
		{Name: "Butter Chicken", Price: 120.00, PackagingPrice: 5.00, Available: true,
			PreparationTime: 25, MenuCategoryID: cat.ID, RestaurantID: rest.ID},
		{Name: "Garlic Naan", Price: 25.00, PackagingPrice: 2.00, Available: true,
			PreparationTime: 10, MenuCategoryID: cat.ID, RestaurantID: rest.ID},
		{Name: "Tandoori Lamb", Price: 0.45, DynamicPricing: true, PackagingPrice: 5.00,
			Available: true, PreparationTime: 35, MenuCategoryID: cat.ID, RestaurantID: rest.ID},
		{Name: "Seasonal Special", Price: 80.00, Available: false,
			PreparationTime: 20, MenuCategoryID: cat.ID, RestaurantID: rest.ID},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}
	return cat, items
}
