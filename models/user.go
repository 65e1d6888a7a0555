package models

import "time"

type Country string

const (
	CountryUzbekistan Country = "UZB"
	CountryKazakhstan Country = "KAZ"
	CountryKyrgyzstan Country = "KYR"
)

// ValidCountry reports whether c is one of the supported country codes.
func ValidCountry(c Country) bool {
	switch c {
	case CountryUzbekistan, CountryKazakhstan, CountryKyrgyzstan:
		return true
	}
	return false
}

// User is identified by email; there is no username field. Password
// always holds a bcrypt hash, never the plaintext.
type User struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email       string  `gorm:"unique;not null;size:254" json:"email"`
	Password    string  `gorm:"not null" json:"-"`
	FirstName   string  `gorm:"size:50" json:"first_name"`
	LastName    string  `gorm:"size:50" json:"last_name"`
	PhoneNumber string  `gorm:"size:15" json:"phone_number"`
	Address1    string  `gorm:"size:250" json:"address1"`
	Address2    string  `gorm:"size:250" json:"address2"`
	Country     Country `gorm:"type:VARCHAR(3);default:'UZB'" json:"country"`
	City        string  `gorm:"size:50" json:"city"`
	State       string  `gorm:"size:50" json:"state"`
	Zipcode     string  `gorm:"size:50" json:"zipcode"`
	IsStaff     bool    `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool    `gorm:"default:false" json:"is_superuser"`

	Baskets []Basket `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"baskets,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
