package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasteofindiazambia/backend/entity"
	"github.com/tasteofindiazambia/backend/repository"
	"github.com/tasteofindiazambia/backend/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrderAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Restaurant{}, &entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Customer{},
	))

	customers := services.NewCustomerService(repository.NewCustomerRepository(db))
	orderSvc := services.NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewRestaurantRepository(db),
		customers, nil, nil,
	)
	ctrl := NewOrderController(orderSvc, "http://localhost:8000")

	r := gin.New()
	r.POST("/api/orders", ctrl.Create)
	r.GET("/api/orders/token/:token", ctrl.GetByToken)
	r.GET("/api/orders/token/:token/qr", ctrl.TokenQR)
	return r, db
}

func seedAPIData(t *testing.T, db *gorm.DB) (*entity.Restaurant, *entity.MenuItem) {
	t.Helper()
	rest := &entity.Restaurant{
		Name: "Taste of India", Active: true,
		Latitude: -15.4167, Longitude: 28.2833,
		DeliveryFeePerKm: 10, MinDeliveryOrder: 150, MaxDeliveryRadiusKm: 15,
	}
	require.NoError(t, db.Create(rest).Error)
	cat := &entity.MenuCategory{Name: "Mains", RestaurantID: rest.ID}
	require.NoError(t, db.Create(cat).Error)
	item := &entity.MenuItem{
		Name: "Butter Chicken", Price: 120, PackagingPrice: 5,
		Available: true, PreparationTime: 25,
		MenuCategoryID: cat.ID, RestaurantID: rest.ID,
	}
	require.NoError(t, db.Create(item).Error)
	return rest, item
}

type orderEnvelope struct {
	OK   bool `json:"ok"`
	Data struct {
		Order entity.Order       `json:"order"`
		Items []entity.OrderItem `json:"items"`
	} `json:"data"`
	Error string `json:"error"`
}

func postOrder(t *testing.T, r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrderAPI_CreateAndTrackRoundTrip(t *testing.T) {
	r, db := setupOrderAPI(t)
	rest, item := seedAPIData(t, db)

	w := postOrder(t, r, map[string]any{
		"customer_name":  "Chanda Mwale",
		"customer_phone": "+260971234567",
		"restaurant_id":  rest.ID,
		"order_type":     "pickup",
		"items": []map[string]any{
			{"menu_item_id": item.ID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created orderEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.True(t, created.OK)
	assert.Equal(t, 250.00, created.Data.Order.TotalAmount) // 2x120 + 2x5 packaging
	require.NotEmpty(t, created.Data.Order.OrderToken)
	require.NotEmpty(t, created.Data.Order.OrderNumber)

	// fetch back by token; items and totals must match exactly
	req := httptest.NewRequest(http.MethodGet, "/api/orders/token/"+created.Data.Order.OrderToken, nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)

	var fetched orderEnvelope
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &fetched))
	assert.Equal(t, created.Data.Order.ID, fetched.Data.Order.ID)
	assert.Equal(t, created.Data.Order.TotalAmount, fetched.Data.Order.TotalAmount)
	require.Len(t, fetched.Data.Items, 1)
	assert.Equal(t, 2, fetched.Data.Items[0].Quantity)
	assert.Equal(t, 250.00, fetched.Data.Items[0].TotalPrice)
}

func TestOrderAPI_ValidationAndNotFound(t *testing.T) {
	r, db := setupOrderAPI(t)
	rest, item := seedAPIData(t, db)

	// missing phone
	w := postOrder(t, r, map[string]any{
		"customer_name": "Chanda Mwale",
		"restaurant_id": rest.ID,
		"order_type":    "pickup",
		"items":         []map[string]any{{"menu_item_id": item.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// delivery outside the radius
	w = postOrder(t, r, map[string]any{
		"customer_name":        "Chanda Mwale",
		"customer_phone":       "+260971234567",
		"restaurant_id":        rest.ID,
		"order_type":           "delivery",
		"delivery_address":     "Far away",
		"delivery_latitude":    -15.596564,
		"delivery_longitude":   28.2833,
		"delivery_distance_km": 20,
		"items":                []map[string]any{{"menu_item_id": item.ID, "quantity": 2}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "delivery radius")

	// unknown token
	req := httptest.NewRequest(http.MethodGet, "/api/orders/token/doesnotexist", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

func TestOrderAPI_TrackingQR(t *testing.T) {
	r, db := setupOrderAPI(t)
	rest, item := seedAPIData(t, db)

	w := postOrder(t, r, map[string]any{
		"customer_name":  "Chanda Mwale",
		"customer_phone": "+260971234567",
		"restaurant_id":  rest.ID,
		"order_type":     "pickup",
		"items":          []map[string]any{{"menu_item_id": item.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created orderEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet,
		"/api/orders/token/"+created.Data.Order.OrderToken+"/qr", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "image/png", w2.Header().Get("Content-Type"))
	assert.NotEmpty(t, w2.Body.Bytes())
}
