package services

import (
	"time"

	"github.com/tasteofindiazambia/backend/entity"
	"gorm.io/gorm"
)

// AnalyticsService answers the back-office dashboard queries. Reads only.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

type TopItem struct {
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
}

type Overview struct {
	TotalOrders     int64            `json:"totalOrders"`
	OrdersByStatus  map[string]int64 `json:"ordersByStatus"`
	Revenue         float64          `json:"revenue"`
	AvgOrderValue   float64          `json:"avgOrderValue"`
	TopItems        []TopItem        `json:"topItems"`
	Reservations    int64            `json:"reservations"`
	UniqueCustomers int64            `json:"uniqueCustomers"`
}

// Overview aggregates orders since the given time; cancelled orders are
// excluded from revenue but counted per status.
func (s *AnalyticsService) Overview(restaurantID uint, since time.Time) (*Overview, error) {
	out := &Overview{OrdersByStatus: map[string]int64{}}

	orders := s.DB.Model(&entity.Order{}).Where("created_at >= ?", since)
	if restaurantID != 0 {
		orders = orders.Where("restaurant_id = ?", restaurantID)
	}

	if err := orders.Session(&gorm.Session{}).Count(&out.TotalOrders).Error; err != nil {
		return nil, err
	}

	var byStatus []struct {
		Status string
		N      int64
	}
	if err := orders.Session(&gorm.Session{}).
		Select("status, COUNT(*) AS n").Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		out.OrdersByStatus[row.Status] = row.N
	}

	var rev struct {
		Revenue float64
		N       int64
	}
	if err := orders.Session(&gorm.Session{}).
		Where("status <> ?", entity.StatusCancelled).
		Select("COALESCE(SUM(total_amount),0) AS revenue, COUNT(*) AS n").
		Scan(&rev).Error; err != nil {
		return nil, err
	}
	out.Revenue = rev.Revenue
	if rev.N > 0 {
		out.AvgOrderValue = rev.Revenue / float64(rev.N)
	}

	top := s.DB.Table("order_items oi").
		Select("oi.menu_item_id, mi.name, SUM(oi.quantity) AS quantity, SUM(oi.total_price) AS revenue").
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.created_at >= ? AND o.status <> ?", since, entity.StatusCancelled)
	if restaurantID != 0 {
		top = top.Where("o.restaurant_id = ?", restaurantID)
	}
	if err := top.Group("oi.menu_item_id, mi.name").
		Order("quantity DESC").Limit(5).
		Scan(&out.TopItems).Error; err != nil {
		return nil, err
	}

	reservations := s.DB.Model(&entity.Reservation{}).Where("created_at >= ?", since)
	if restaurantID != 0 {
		reservations = reservations.Where("restaurant_id = ?", restaurantID)
	}
	if err := reservations.Count(&out.Reservations).Error; err != nil {
		return nil, err
	}

	unique := s.DB.Model(&entity.Order{}).Where("created_at >= ?", since)
	if restaurantID != 0 {
		unique = unique.Where("restaurant_id = ?", restaurantID)
	}
	if err := unique.Distinct("customer_phone").Count(&out.UniqueCustomers).Error; err != nil {
		return nil, err
	}

	return out, nil
}
