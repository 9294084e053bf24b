package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderToken returns an opaque 32-char token used for unauthenticated
// order lookup. UUIDv4 randomness, dashes stripped for URL friendliness.
func NewOrderToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewOrderNumber returns a human-readable order number, e.g. ORD-20260901-4F2A.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

// NewReservationNumber returns a human-readable reservation number.
func NewReservationNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("RES-%s-%s", now.Format("20060102"), suffix)
}
