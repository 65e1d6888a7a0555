package models

type Partner struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"size:50" json:"title"`
	Image string `json:"image"`
}
