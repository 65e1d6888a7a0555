package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBasketProductTotalPrice(t *testing.T) {
	sale := dec("14.99")

	tests := []struct {
		name     string
		product  *Product
		quantity int
		want     string
	}{
		{
			name:     "regular price",
			product:  &Product{Price: dec("19.99")},
			quantity: 3,
			want:     "59.97",
		},
		{
			name:     "sale overrides price",
			product:  &Product{Price: dec("19.99"), Sale: &sale},
			quantity: 3,
			want:     "44.97",
		},
		{
			name:     "single unit",
			product:  &Product{Price: dec("0.10")},
			quantity: 1,
			want:     "0.10",
		},
		{
			name:     "deleted product counts as zero",
			product:  nil,
			quantity: 5,
			want:     "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp := BasketProduct{Product: tt.product, Quantity: tt.quantity}
			if got := bp.TotalPrice().StringFixed(2); got != tt.want {
				t.Errorf("TotalPrice() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBasketTotalQuantity(t *testing.T) {
	basket := Basket{
		Items: []BasketProduct{
			{Quantity: 2},
			{Quantity: 3},
		},
	}
	if got := basket.TotalQuantity(); got != 5 {
		t.Errorf("TotalQuantity() = %d, want 5", got)
	}

	empty := Basket{}
	if got := empty.TotalQuantity(); got != 0 {
		t.Errorf("TotalQuantity() on empty basket = %d, want 0", got)
	}
}

func TestBasketTotalPrice(t *testing.T) {
	sale := dec("5.00")
	basket := Basket{
		Items: []BasketProduct{
			{Product: &Product{Price: dec("19.99")}, Quantity: 2},
			{Product: &Product{Price: dec("10.00"), Sale: &sale}, Quantity: 3},
		},
	}
	if got := basket.TotalPrice().StringFixed(2); got != "54.98" {
		t.Errorf("TotalPrice() = %s, want 54.98", got)
	}
}

func TestBasketTotalPriceSkipsDanglingProducts(t *testing.T) {
	basket := Basket{
		Items: []BasketProduct{
			{Product: &Product{Price: dec("9.99")}, Quantity: 1},
			{Product: nil, Quantity: 4}, // product deleted, reference cleared
		},
	}
	if got := basket.TotalPrice().StringFixed(2); got != "9.99" {
		t.Errorf("TotalPrice() = %s, want 9.99", got)
	}
	// The line itself still exists, so its quantity still counts
	if got := basket.TotalQuantity(); got != 5 {
		t.Errorf("TotalQuantity() = %d, want 5", got)
	}
}

func TestBasketTotalsNoFloatDrift(t *testing.T) {
	// 0.1 * 3 is not representable in binary floating point; decimal
	// arithmetic must give the exact result.
	basket := Basket{
		Items: []BasketProduct{
			{Product: &Product{Price: dec("0.10")}, Quantity: 3},
		},
	}
	if !basket.TotalPrice().Equal(dec("0.30")) {
		t.Errorf("TotalPrice() = %s, want exactly 0.30", basket.TotalPrice())
	}
}
