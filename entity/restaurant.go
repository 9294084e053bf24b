package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Active  bool   `gorm:"default:true" json:"active"`

	// delivery configuration
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	DeliveryFeePerKm    float64 `json:"deliveryFeePerKm"`
	DeliveryTimeMinutes int     `json:"deliveryTimeMinutes"`
	MinDeliveryOrder    float64 `json:"minDeliveryOrder"`
	MaxDeliveryRadiusKm float64 `json:"maxDeliveryRadiusKm"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
