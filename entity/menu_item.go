package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`

	// DynamicPricing marks items sold by weight; Price is then per gram.
	DynamicPricing bool `gorm:"default:false" json:"dynamicPricing"`

	PackagingPrice  float64 `json:"packagingPrice"`
	Available       bool    `gorm:"default:true" json:"available"`
	PreparationTime int     `json:"preparationTime"` // minutes

	MenuCategoryID uint         `json:"menuCategoryId"`
	MenuCategory   MenuCategory `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
