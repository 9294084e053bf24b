package entity

import (
	"gorm.io/gorm"
)

const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`

	// OrderToken lets a customer fetch their order without an account.
	OrderToken string `gorm:"uniqueIndex;not null" json:"orderToken"`

	// customer fields are denormalized; Customer aggregates are keyed
	// by phone, not by a foreign key here
	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	OrderType string      `gorm:"not null;default:pickup" json:"orderType"`
	Status    OrderStatus `gorm:"not null;default:pending" json:"status"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	TotalAmount float64 `json:"totalAmount"`

	DeliveryAddress    string  `json:"deliveryAddress"`
	DeliveryLatitude   float64 `json:"deliveryLatitude"`
	DeliveryLongitude  float64 `json:"deliveryLongitude"`
	DeliveryDistanceKm float64 `json:"deliveryDistanceKm"`

	PaymentMethod       string `json:"paymentMethod"`
	SpecialInstructions string `json:"specialInstructions"`
	EstimatedPrepTime   int    `json:"estimatedPreparationTime"` // minutes

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
