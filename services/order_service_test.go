package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasteofindiazambia/backend/entity"
	"github.com/tasteofindiazambia/backend/repository"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	db := newTestDB(t)
	customers := NewCustomerService(repository.NewCustomerRepository(db))
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewRestaurantRepository(db),
		customers, nil, nil,
	)
	return svc, db
}

func floatPtr(v float64) *float64 { return &v }

func pickupInput(rest *entity.Restaurant, items []entity.MenuItem) *CreateOrderInput {
	return &CreateOrderInput{
		CustomerName:  "Chanda Mwale",
		CustomerPhone: "+260971234567",
		RestaurantID:  rest.ID,
		OrderType:     entity.OrderTypePickup,
		Items: []OrderItemInput{
			{MenuItemID: items[0].ID, Quantity: 1}, // 120 + 5 packaging
			{MenuItemID: items[1].ID, Quantity: 2}, // 2x25 + 2x2 packaging
		},
	}
}

func TestCreateOrder_Pickup(t *testing.T) {
	svc, _ := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	detail, err := svc.Create(pickupInput(rest, items))
	require.NoError(t, err)

	o := detail.Order
	assert.Equal(t, entity.StatusPending, o.Status)
	assert.Equal(t, 179.00, o.Subtotal) // 125 + 54
	assert.Equal(t, 0.0, o.DeliveryFee)
	assert.Equal(t, 179.00, o.TotalAmount)
	assert.Equal(t, 25, o.EstimatedPrepTime) // slowest item wins
	assert.Len(t, detail.Items, 2)
	assert.Len(t, o.OrderToken, 32)
	assert.Contains(t, o.OrderNumber, "ORD-")

	// snapshot of the stored price, not client input
	assert.Equal(t, 120.00, detail.Items[0].UnitPrice)
	assert.Equal(t, 54.00, detail.Items[1].TotalPrice)
}

func TestCreateOrder_DeliveryFeeFromDistance(t *testing.T) {
	svc, _ := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	in := pickupInput(rest, items)
	in.OrderType = entity.OrderTypeDelivery
	in.DeliveryAddress = "Plot 5, Kabulonga"
	// roughly 11.95km due south of the restaurant
	in.DeliveryLatitude = floatPtr(-15.524169)
	in.DeliveryLongitude = floatPtr(28.2833)
	in.DeliveryDistanceKm = floatPtr(11.9)

	detail, err := svc.Create(in)
	require.NoError(t, err)

	o := detail.Order
	// ceil(11.95 x K10/km)
	assert.Equal(t, 120.0, o.DeliveryFee)
	assert.Equal(t, o.Subtotal+o.DeliveryFee, o.TotalAmount)
	assert.InDelta(t, 11.95, o.DeliveryDistanceKm, 0.01)
}

func TestCreateOrder_OutOfRadiusRejected(t *testing.T) {
	svc, _ := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	in := pickupInput(rest, items)
	in.OrderType = entity.OrderTypeDelivery
	in.DeliveryAddress = "Far away"
	// roughly 20km south, radius is 15km
	in.DeliveryLatitude = floatPtr(-15.596564)
	in.DeliveryLongitude = floatPtr(28.2833)
	in.DeliveryDistanceKm = floatPtr(20)

	_, err := svc.Create(in)
	assert.ErrorIs(t, err, ErrOutOfRadius)

	// nothing persisted
	var n int64
	svc.DB.Model(&entity.Order{}).Count(&n)
	assert.EqualValues(t, 0, n)
}

func TestCreateOrder_BelowMinimumRejected(t *testing.T) {
	svc, _ := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	in := &CreateOrderInput{
		CustomerName:       "Chanda Mwale",
		CustomerPhone:      "+260971234567",
		RestaurantID:       rest.ID,
		OrderType:          entity.OrderTypeDelivery,
		DeliveryAddress:    "Plot 5, Kabulonga",
		DeliveryLatitude:   floatPtr(-15.45),
		DeliveryLongitude:  floatPtr(28.2833),
		DeliveryDistanceKm: floatPtr(4),
		Items: []OrderItemInput{
			{MenuItemID: items[1].ID, Quantity: 1}, // 27.00 < K150 minimum
		},
	}

	_, err := svc.Create(in)
	assert.ErrorIs(t, err, ErrBelowMinimumOrder)
}

func TestCreateOrder_ValidationErrors(t *testing.T) {
	svc, _ := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	tests := []struct {
		name   string
		mutate func(*CreateOrderInput)
	}{
		{"missing_name", func(in *CreateOrderInput) { in.CustomerName = "" }},
		{"missing_phone", func(in *CreateOrderInput) { in.CustomerPhone = "" }},
		{"missing_restaurant", func(in *CreateOrderInput) { in.RestaurantID = 0 }},
		{"empty_items", func(in *CreateOrderInput) { in.Items = nil }},
		{"bad_order_type", func(in *CreateOrderInput) { in.OrderType = "drone" }},
		{"delivery_without_address", func(in *CreateOrderInput) {
			in.OrderType = entity.OrderTypeDelivery
			in.DeliveryLatitude = floatPtr(-15.45)
			in.DeliveryLongitude = floatPtr(28.28)
			in.DeliveryDistanceKm = floatPtr(4)
		}},
		{"delivery_without_coords", func(in *CreateOrderInput) {
			in.OrderType = entity.OrderTypeDelivery
			in.DeliveryAddress = "Plot 5"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := pickupInput(rest, items)
			tt.mutate(in)
			_, err := svc.Create(in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateOrder_MenuChecks(t *testing.T) {
	svc, _ := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	t.Run("unknown_item", func(t *testing.T) {
		in := pickupInput(rest, items)
		in.Items[0].MenuItemID = 9999
		_, err := svc.Create(in)
		assert.ErrorIs(t, err, ErrMenuItemNotFound)
	})

	t.Run("unavailable_item", func(t *testing.T) {
		in := pickupInput(rest, items)
		in.Items[0].MenuItemID = items[3].ID // Seasonal Special, not available
		_, err := svc.Create(in)
		assert.ErrorIs(t, err, ErrMenuItemUnavailable)
	})

	t.Run("item_from_other_restaurant", func(t *testing.T) {
		other := &entity.Restaurant{Name: "Other Place", Active: true}
		require.NoError(t, svc.DB.Create(other).Error)
		foreign := &entity.MenuItem{Name: "Foreign Dish", Price: 50, Available: true, RestaurantID: other.ID}
		require.NoError(t, svc.DB.Create(foreign).Error)

		in := pickupInput(rest, items)
		in.Items[0].MenuItemID = foreign.ID
		_, err := svc.Create(in)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("inactive_restaurant", func(t *testing.T) {
		closed := &entity.Restaurant{Name: "Closed Place", Active: false}
		require.NoError(t, svc.DB.Create(closed).Error)
		in := pickupInput(rest, items)
		in.RestaurantID = closed.ID
		_, err := svc.Create(in)
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})
}

func TestCreateOrder_DynamicPricing(t *testing.T) {
	svc, _ := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	in := &CreateOrderInput{
		CustomerName:  "Chanda Mwale",
		CustomerPhone: "+260971234567",
		RestaurantID:  rest.ID,
		OrderType:     entity.OrderTypePickup,
		Items: []OrderItemInput{
			// 500g of lamb at K0.45/g, plus K5 packaging
			{MenuItemID: items[2].ID, Quantity: 1, Grams: 500},
		},
	}

	detail, err := svc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, 230.00, detail.Order.Subtotal)

	t.Run("missing_grams_rejected", func(t *testing.T) {
		in.Items[0].Grams = 0
		_, err := svc.Create(in)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCreateOrder_UpdatesCustomerAggregates(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	detail, err := svc.Create(pickupInput(rest, items))
	require.NoError(t, err)

	var c entity.Customer
	require.NoError(t, db.Where("phone = ?", "+260971234567").First(&c).Error)
	assert.Equal(t, 1, c.TotalOrders)
	assert.Equal(t, detail.Order.TotalAmount, c.TotalSpent)
}

func TestCreateOrder_SurvivesAggregateFailure(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	// break the aggregate store; checkout must not care
	require.NoError(t, db.Migrator().DropTable(&entity.Customer{}))

	detail, err := svc.Create(pickupInput(rest, items))
	require.NoError(t, err)
	assert.Equal(t, 179.00, detail.Order.TotalAmount)

	fetched, err := svc.GetByToken(detail.Order.OrderToken)
	require.NoError(t, err)
	assert.Len(t, fetched.Items, 2)
}

func TestCreateOrder_RollsBackHeaderOnItemFailure(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	// make the item insert fail after the header insert succeeds
	require.NoError(t, db.Migrator().DropTable(&entity.OrderItem{}))

	_, err := svc.Create(pickupInput(rest, items))
	require.Error(t, err)

	// the header did not survive the rollback
	var n int64
	db.Model(&entity.Order{}).Count(&n)
	assert.EqualValues(t, 0, n)
}

func TestGetByToken_RoundTrip(t *testing.T) {
	svc, _ := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	created, err := svc.Create(pickupInput(rest, items))
	require.NoError(t, err)

	fetched, err := svc.GetByToken(created.Order.OrderToken)
	require.NoError(t, err)
	assert.Equal(t, created.Order.ID, fetched.Order.ID)
	assert.Equal(t, created.Order.TotalAmount, fetched.Order.TotalAmount)
	require.Len(t, fetched.Items, len(created.Items))
	for i := range fetched.Items {
		assert.Equal(t, created.Items[i].MenuItemID, fetched.Items[i].MenuItemID)
		assert.Equal(t, created.Items[i].Quantity, fetched.Items[i].Quantity)
		assert.Equal(t, created.Items[i].TotalPrice, fetched.Items[i].TotalPrice)
	}

	// lookup is read-only: a second fetch returns the same thing
	again, err := svc.GetByToken(created.Order.OrderToken)
	require.NoError(t, err)
	assert.Equal(t, fetched.Order, again.Order)

	_, err = svc.GetByToken("nonexistent")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	created, err := svc.Create(pickupInput(rest, items))
	require.NoError(t, err)
	id := created.Order.ID

	prep := 30
	o, err := svc.UpdateStatus(id, entity.StatusConfirmed, &prep)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, o.Status)
	assert.Equal(t, 30, o.EstimatedPrepTime)

	// skipping ahead is rejected
	_, err = svc.UpdateStatus(id, entity.StatusReady, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	o, err = svc.UpdateStatus(id, entity.StatusPreparing, nil)
	require.NoError(t, err)
	o, err = svc.UpdateStatus(id, entity.StatusReady, nil)
	require.NoError(t, err)
	o, err = svc.UpdateStatus(id, entity.StatusDelivered, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, o.Status)

	// terminal
	_, err = svc.UpdateStatus(id, entity.StatusCancelled, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(9999, entity.StatusConfirmed, nil)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatus_CancelFromNonTerminal(t *testing.T) {
	svc, _ := newOrderService(t)
	rest := seedRestaurant(t, svc.DB)
	_, items := seedMenu(t, svc.DB, rest)

	created, err := svc.Create(pickupInput(rest, items))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(created.Order.ID, entity.StatusConfirmed, nil)
	require.NoError(t, err)
	o, err := svc.UpdateStatus(created.Order.ID, entity.StatusCancelled, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, o.Status)
}
