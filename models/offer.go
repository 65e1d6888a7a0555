package models

import "github.com/shopspring/decimal"

// Offer is a promotional banner with a discount percent. Percent is
// stored as entered; range checking happens only when applying it.
type Offer struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title   string `gorm:"not null;size:100" json:"title"`
	Percent int    `gorm:"default:10" json:"percent"`
	Image   string `json:"image"`
}

// Apply returns price reduced by the offer percent, clamped to 0-100.
func (o *Offer) Apply(price decimal.Decimal) decimal.Decimal {
	percent := o.Percent
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	factor := decimal.NewFromInt(int64(100 - percent)).Div(decimal.NewFromInt(100))
	return price.Mul(factor).Round(2)
}
