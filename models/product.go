package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Size string

const (
	SizeExtraSmall Size = "XS"
	SizeSmall      Size = "S"
	SizeMedium     Size = "M"
	SizeLarge      Size = "L"
	SizeExtraLarge Size = "XL"
)

// ValidSize reports whether s is one of the supported product sizes.
func ValidSize(s Size) bool {
	switch s {
	case SizeExtraSmall, SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	}
	return false
}

const (
	DefaultDescription = "The description is not available"
	DefaultInfo        = "The information is not available"
)

type Product struct {
	ID          uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string           `gorm:"not null;size:50" json:"title"`
	Price       decimal.Decimal  `gorm:"type:decimal(5,2);not null" json:"price"`
	Sale        *decimal.Decimal `gorm:"type:decimal(5,2)" json:"sale"` // nil means no sale
	Description string           `gorm:"type:text" json:"description"`
	Size        Size             `gorm:"type:VARCHAR(2);default:'M'" json:"size"`
	Color       string           `gorm:"size:30" json:"color"`
	Info        string           `gorm:"type:text" json:"info"`
	CategoryID  uint             `gorm:"index;not null" json:"category_id"`
	Quantity    int              `gorm:"default:10" json:"quantity"`
	Slug        string           `gorm:"uniqueIndex;not null" json:"slug"`

	Photos []Gallery `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`

	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
}

// EffectivePrice returns the sale price when one is set, otherwise the
// regular price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.Sale != nil {
		return *p.Sale
	}
	return p.Price
}

// FirstPhoto returns the URL of the earliest uploaded gallery image.
// Photos must be preloaded in insertion order; if the product has none
// the fallback placeholder is returned instead of an error.
func (p *Product) FirstPhoto() string {
	if len(p.Photos) == 0 || p.Photos[0].Image == "" {
		return productFallbackImage
	}
	return p.Photos[0].Image
}

type Gallery struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	Image     string `gorm:"not null" json:"image"`
}
