package models

// Like links a user to a product they liked. Duplicates are allowed.
type Like struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint `gorm:"index;not null" json:"product_id"`
	UserID    uint `gorm:"index;not null" json:"user_id"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
