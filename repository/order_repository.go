package repository

import (
	"time"

	"github.com/tasteofindiazambia/backend/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderByToken is the customer-facing lookup; no auth involved.
func (r *OrderRepository) GetOrderByToken(token string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("order_token = ?", token).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID            uint               `json:"id"`
	OrderNumber   string             `json:"orderNumber"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	OrderType     string             `json:"orderType"`
	Status        entity.OrderStatus `json:"status"`
	TotalAmount   float64            `json:"totalAmount"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(restaurantID uint, status *entity.OrderStatus, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Order{})
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	if status != nil && *status != "" {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := q.Session(&gorm.Session{}).
		Select("id, order_number, customer_name, customer_phone, order_type, status, total_amount, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

// UpdateStatusGuard flips the status only when the order is still in
// the expected state; the affected-rows count exposes lost races.
func (r *OrderRepository) UpdateStatusGuard(orderID uint, from, to entity.OrderStatus, updates map[string]any) (int64, error) {
	if updates == nil {
		updates = map[string]any{}
	}
	updates["status"] = to
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}
