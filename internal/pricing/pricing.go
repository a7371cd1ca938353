// Package pricing computes effective prices. Every place a price is
// displayed or totaled goes through this package so the two never diverge.
package pricing

import "github.com/malakstore/souq/internal/models"

// Effective returns the price after the discount percentage is applied.
// A discount of 0 (or anything non-positive) leaves the price unchanged.
func Effective(price, discount float64) float64 {
	if discount > 0 {
		return price * (1 - discount/100)
	}
	return price
}

// ProductPrice returns the effective unit price for a product.
func ProductPrice(p models.Product) float64 {
	return Effective(p.Price, p.Discount)
}

// LineTotal returns the effective price of a cart line.
func LineTotal(item models.CartItem) float64 {
	return ProductPrice(item.Product) * float64(item.Quantity)
}
