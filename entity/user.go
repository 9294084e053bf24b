package entity

import (
	"gorm.io/gorm"
)

// User is a back-office account (admin or staff). Customers do not
// authenticate; they track orders by token.
type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:staff" json:"role"`
}
