package entity

import (
	"time"

	"gorm.io/gorm"
)

// Customer carries running aggregates over a customer's orders.
// Phone is the dedup key; email is a fallback.
type Customer struct {
	gorm.Model
	Name  string `json:"name"`
	Phone string `gorm:"uniqueIndex;not null" json:"phone"`
	Email string `json:"email"`

	TotalOrders       int     `json:"totalOrders"`
	TotalSpent        float64 `json:"totalSpent"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	LoyaltyPoints     int     `json:"loyaltyPoints"`

	LastOrderDate *time.Time `json:"lastOrderDate"`
}
