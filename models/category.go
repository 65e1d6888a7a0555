package models

type Category struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"not null;size:50" json:"title"`
	Image string `json:"image"`

	SubCategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"sub_categories,omitempty"`
	Products      []Product     `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

// Photo returns the category image URL, or the fallback placeholder
// when no image is assigned. Never returns an empty string.
func (c *Category) Photo() string {
	if c.Image == "" {
		return categoryFallbackImage
	}
	return c.Image
}

type SubCategory struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null;size:50" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `json:"image"`
	CategoryID  uint   `gorm:"index;not null" json:"category_id"`
}
