package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Basket is a user's cart entry, unique per (user, product). User and
// product references survive deletion of either side (SET NULL), so
// both keys are nullable.
type Basket struct {
	ID        uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint `gorm:"uniqueIndex:idx_basket_user_product" json:"user_id"`
	ProductID *uint `gorm:"uniqueIndex:idx_basket_user_product" json:"product_id"`

	Product *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
	Items   []BasketProduct `gorm:"foreignKey:BasketID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TotalQuantity sums the quantity of every line item. Items must be
// preloaded; the result is recomputed on every call.
func (b *Basket) TotalQuantity() int {
	total := 0
	for _, item := range b.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums the line totals of every item. Lines whose product
// reference has been cleared contribute zero.
func (b *Basket) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// BasketProduct is one line item in a basket with its own quantity.
type BasketProduct struct {
	ID        uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	BasketID  uint  `gorm:"index;not null" json:"basket_id"`
	ProductID *uint `gorm:"index" json:"product_id"`
	UserID    *uint `gorm:"index" json:"user_id"`
	Quantity  int   `gorm:"default:1;check:quantity > 0" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`

	AddedAt time.Time `gorm:"<-:create;autoCreateTime" json:"added_at"`
}

// TotalPrice returns quantity times the effective product price (the
// sale price when one is set). A dangling product reference yields
// zero rather than an error.
func (bp *BasketProduct) TotalPrice() decimal.Decimal {
	if bp.Product == nil {
		return decimal.Zero
	}
	return bp.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(bp.Quantity)))
}
