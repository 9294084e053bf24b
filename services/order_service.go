package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tasteofindiazambia/backend/entity"
	"github.com/tasteofindiazambia/backend/repository"
	"github.com/tasteofindiazambia/backend/utils"
	"gorm.io/gorm"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	RestRepo *repository.RestaurantRepository

	Customers *CustomerService
	Events    *EventPublisher // optional
	Notifier  OrderNotifier   // optional
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	restRepo *repository.RestaurantRepository,
	customers *CustomerService,
	events *EventPublisher,
	notifier OrderNotifier,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, MenuRepo: menuRepo, RestRepo: restRepo,
		Customers: customers, Events: events, Notifier: notifier,
	}
}

// ----- Input -----

type OrderItemInput struct {
	MenuItemID          uint
	Quantity            int
	Grams               float64
	SpecialInstructions string
}

type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	RestaurantID uint
	OrderType    string

	PaymentMethod       string
	SpecialInstructions string

	Items []OrderItemInput

	DeliveryAddress    string
	DeliveryLatitude   *float64
	DeliveryLongitude  *float64
	DeliveryDistanceKm *float64
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

// ----- Create -----

// Create runs the order workflow: validate, price from stored menu data,
// gate delivery eligibility, then persist header and items in one
// transaction. Customer aggregates and event publication are secondary
// side effects and never fail the order.
func (s *OrderService) Create(in *CreateOrderInput) (*OrderDetail, error) {
	if err := validateCreateOrder(in); err != nil {
		return nil, err
	}

	rest, err := s.RestRepo.GetActive(in.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	// stored prices only; client-supplied prices are never trusted
	priced := make([]PricedItem, 0, len(in.Items))
	maxPrep := 0
	for _, it := range in.Items {
		m, err := s.MenuRepo.GetItemBasics(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: item %d", ErrMenuItemNotFound, it.MenuItemID)
			}
			return nil, err
		}
		if m.RestaurantID != in.RestaurantID {
			return nil, fmt.Errorf("%w: item %q does not belong to this restaurant", ErrValidation, m.Name)
		}
		if !m.Available {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemUnavailable, m.Name)
		}
		if m.PreparationTime > maxPrep {
			maxPrep = m.PreparationTime
		}
		priced = append(priced, PricedItem{
			MenuItemID:     m.ID,
			Quantity:       it.Quantity,
			Grams:          it.Grams,
			UnitPrice:      m.Price,
			DynamicPricing: m.DynamicPricing,
			PackagingPrice: m.PackagingPrice,
		})
	}

	lines, subtotal, err := PriceOrder(priced)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var deliveryFee, distanceKm float64
	if in.OrderType == entity.OrderTypeDelivery {
		distanceKm = *in.DeliveryDistanceKm
		if rest.Latitude != 0 || rest.Longitude != 0 {
			distanceKm = Haversine(rest.Latitude, rest.Longitude,
				*in.DeliveryLatitude, *in.DeliveryLongitude)
		}
		if err := CheckDeliveryEligibility(distanceKm, subtotal,
			rest.MaxDeliveryRadiusKm, rest.MinDeliveryOrder); err != nil {
			return nil, err
		}
		deliveryFee = DeliveryFee(distanceKm, rest.DeliveryFeePerKm)
	}

	now := time.Now()
	order := entity.Order{
		OrderNumber:         utils.NewOrderNumber(now),
		OrderToken:          utils.NewOrderToken(),
		CustomerName:        in.CustomerName,
		CustomerPhone:       in.CustomerPhone,
		CustomerEmail:       in.CustomerEmail,
		OrderType:           in.OrderType,
		Status:              entity.StatusPending,
		Subtotal:            subtotal,
		DeliveryFee:         deliveryFee,
		TotalAmount:         round2(subtotal + deliveryFee),
		PaymentMethod:       in.PaymentMethod,
		SpecialInstructions: in.SpecialInstructions,
		EstimatedPrepTime:   maxPrep,
		RestaurantID:        in.RestaurantID,
	}
	if in.OrderType == entity.OrderTypeDelivery {
		order.DeliveryAddress = in.DeliveryAddress
		order.DeliveryLatitude = *in.DeliveryLatitude
		order.DeliveryLongitude = *in.DeliveryLongitude
		order.DeliveryDistanceKm = round2(distanceKm)
	}

	var items []entity.OrderItem
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		items = make([]entity.OrderItem, 0, len(in.Items))
		for i, it := range in.Items {
			oi := entity.OrderItem{
				OrderID:             order.ID,
				MenuItemID:          priced[i].MenuItemID,
				Quantity:            it.Quantity,
				Grams:               it.Grams,
				UnitPrice:           priced[i].UnitPrice,
				PackagingPrice:      priced[i].PackagingPrice,
				TotalPrice:          lines[i].LineTotal,
				SpecialInstructions: it.SpecialInstructions,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			items = append(items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// secondary side effects: log and move on
	if err := s.Customers.RecordOrder(in.CustomerName, in.CustomerPhone,
		in.CustomerEmail, order.TotalAmount, now); err != nil {
		logrus.WithError(err).WithField("order", order.OrderNumber).
			Warn("customer aggregate update failed")
	}
	s.emit(EventOrderCreated, &order)

	return &OrderDetail{Order: order, Items: items}, nil
}

func validateCreateOrder(in *CreateOrderInput) error {
	switch {
	case in.CustomerName == "":
		return fmt.Errorf("%w: customer_name is required", ErrValidation)
	case in.CustomerPhone == "":
		return fmt.Errorf("%w: customer_phone is required", ErrValidation)
	case in.RestaurantID == 0:
		return fmt.Errorf("%w: restaurant_id is required", ErrValidation)
	case len(in.Items) == 0:
		return fmt.Errorf("%w: items must not be empty", ErrValidation)
	}

	switch in.OrderType {
	case entity.OrderTypePickup:
	case entity.OrderTypeDelivery:
		if in.DeliveryAddress == "" {
			return fmt.Errorf("%w: delivery_address is required for delivery orders", ErrValidation)
		}
		if in.DeliveryLatitude == nil || in.DeliveryLongitude == nil || in.DeliveryDistanceKm == nil {
			return fmt.Errorf("%w: delivery coordinates and distance are required for delivery orders", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: order_type must be pickup or delivery", ErrValidation)
	}
	return nil
}

// ----- Status transitions -----

// UpdateStatus enforces the transition table centrally. The guarded
// UPDATE uses the loaded status as predicate, so a concurrent change
// surfaces as an invalid transition instead of a silent overwrite.
func (s *OrderService) UpdateStatus(orderID uint, to entity.OrderStatus, estPrepMinutes *int) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !entity.CanTransition(o.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}

	updates := map[string]any{}
	if estPrepMinutes != nil {
		updates["estimated_prep_time"] = *estPrepMinutes
	}
	affected, err := s.Repo.UpdateStatusGuard(o.ID, o.Status, to, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: order changed concurrently", ErrInvalidTransition)
	}

	o, err = s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	s.emit(EventOrderStatusChanged, o)
	return o, nil
}

// ----- Lookup -----

func (s *OrderService) GetByToken(token string) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

func (s *OrderService) Get(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

func (s *OrderService) List(restaurantID uint, status *entity.OrderStatus, page, limit int) ([]repository.OrderSummary, int64, error) {
	return s.Repo.ListOrders(restaurantID, status, page, limit)
}

func (s *OrderService) emit(eventType string, o *entity.Order) {
	evt := OrderEvent{
		Type:         eventType,
		OrderID:      o.ID,
		OrderNumber:  o.OrderNumber,
		RestaurantID: o.RestaurantID,
		Status:       o.Status,
		OrderType:    o.OrderType,
		TotalAmount:  o.TotalAmount,
		OccurredAt:   time.Now(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Events.Publish(ctx, evt); err != nil {
		logrus.WithError(err).WithField("order", o.OrderNumber).Warn("event publish failed")
	}
	if s.Notifier != nil {
		s.Notifier.NotifyOrder(evt)
	}
}
