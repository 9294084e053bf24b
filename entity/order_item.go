package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`

	// Grams applies to dynamic-priced items only (weight per unit).
	Grams float64 `json:"grams"`

	// UnitPrice is a snapshot of the menu price at order time.
	UnitPrice      float64 `json:"unitPrice"`
	PackagingPrice float64 `json:"packagingPrice"`
	TotalPrice     float64 `json:"totalPrice"`

	SpecialInstructions string `json:"specialInstructions"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
