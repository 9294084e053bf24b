package services

import (
	"errors"
	"math"
)

var (
	ErrBadQuantity = errors.New("quantity must be greater than zero")
	ErrBadWeight   = errors.New("grams must be greater than zero for weight-priced items")
	ErrBadPrice    = errors.New("price must not be negative")
)

// PricedItem is one order line ready for pricing. UnitPrice and
// PackagingPrice are the stored menu values, never client input. For
// dynamic-priced (per-gram) items UnitPrice is the price per gram.
type PricedItem struct {
	MenuItemID     uint
	Quantity       int
	Grams          float64
	UnitPrice      float64
	DynamicPricing bool
	PackagingPrice float64
}

type PriceLine struct {
	ItemTotal      float64
	PackagingTotal float64
	LineTotal      float64
}

// PriceLineFor computes one line total. Pure; rejects malformed input
// instead of coercing it to zero.
func PriceLineFor(it PricedItem) (PriceLine, error) {
	if it.Quantity <= 0 {
		return PriceLine{}, ErrBadQuantity
	}
	if it.UnitPrice < 0 || it.PackagingPrice < 0 {
		return PriceLine{}, ErrBadPrice
	}

	unit := it.UnitPrice
	if it.DynamicPricing {
		if it.Grams <= 0 {
			return PriceLine{}, ErrBadWeight
		}
		unit = it.Grams * it.UnitPrice
	}

	line := PriceLine{
		ItemTotal:      round2(float64(it.Quantity) * unit),
		PackagingTotal: round2(float64(it.Quantity) * it.PackagingPrice),
	}
	line.LineTotal = round2(line.ItemTotal + line.PackagingTotal)
	return line, nil
}

// PriceOrder prices every line and returns the order subtotal.
func PriceOrder(items []PricedItem) ([]PriceLine, float64, error) {
	lines := make([]PriceLine, 0, len(items))
	var subtotal float64
	for _, it := range items {
		line, err := PriceLineFor(it)
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, line)
		subtotal += line.LineTotal
	}
	return lines, round2(subtotal), nil
}

// round2 rounds to standard currency precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
