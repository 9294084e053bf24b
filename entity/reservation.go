package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

type Reservation struct {
	gorm.Model
	ReservationNumber string `gorm:"uniqueIndex;not null" json:"reservationNumber"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	DateTime  time.Time `gorm:"not null" json:"dateTime"`
	PartySize int       `gorm:"not null" json:"partySize"`
	Status    string    `gorm:"not null;default:pending" json:"status"`

	Occasion        string `json:"occasion"`
	SpecialRequests string `json:"specialRequests"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
