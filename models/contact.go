package models

import "time"

// Contact is an inbound message from the contact form. Write-once,
// never updated.
type Contact struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName string `gorm:"not null;size:100" json:"full_name"`
	Email    string `gorm:"not null;size:254" json:"email"`
	Subject  string `gorm:"not null;size:150" json:"subject"`
	Message  string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
}
