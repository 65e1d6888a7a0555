package auth

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/Fayzullaev99/multishop/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired  = errors.New("email must be filled")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidCountry = errors.New("invalid country code")
	ErrSuperuserStaff = errors.New("superuser must have is_staff=true")
	ErrSuperuserFlag  = errors.New("superuser must have is_superuser=true")
)

// UserFields are the optional attributes accepted by the user factory.
type UserFields struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Address1    string
	Address2    string
	Country     models.Country
	City        string
	State       string
	Zipcode     string
	IsStaff     *bool
	IsSuperuser *bool
}

// NormalizeEmail trims the address and lower-cases the domain part,
// leaving the local part untouched.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// NewUser validates and builds a user record with a bcrypt-hashed
// password. It does not persist anything.
func NewUser(email, password string, fields UserFields) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	email = NormalizeEmail(email)
	// A bare address only: display-name forms like "Name <a@b.com>"
	// parse but must not become the identity key.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}

	country := fields.Country
	if country == "" {
		country = models.CountryUzbekistan
	}
	if !models.ValidCountry(country) {
		return nil, ErrInvalidCountry
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       email,
		Password:    string(hash),
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		PhoneNumber: fields.PhoneNumber,
		Address1:    fields.Address1,
		Address2:    fields.Address2,
		Country:     country,
		City:        fields.City,
		State:       fields.State,
		Zipcode:     fields.Zipcode,
	}
	if fields.IsStaff != nil {
		user.IsStaff = *fields.IsStaff
	}
	if fields.IsSuperuser != nil {
		user.IsSuperuser = *fields.IsSuperuser
	}
	return user, nil
}

// CreateUser builds and persists a regular user. A duplicate email
// surfaces as gorm.ErrDuplicatedKey.
func CreateUser(db *gorm.DB, email, password string, fields UserFields) (*models.User, error) {
	user, err := NewUser(email, password, fields)
	if err != nil {
		return nil, err
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// NewSuperuser validates and builds a user with both staff flags set.
// Explicitly passing either flag as false is rejected rather than
// overridden. It does not persist anything.
func NewSuperuser(email, password string, fields UserFields) (*models.User, error) {
	if fields.IsStaff != nil && !*fields.IsStaff {
		return nil, ErrSuperuserStaff
	}
	if fields.IsSuperuser != nil && !*fields.IsSuperuser {
		return nil, ErrSuperuserFlag
	}

	t := true
	fields.IsStaff = &t
	fields.IsSuperuser = &t
	return NewUser(email, password, fields)
}

// CreateSuperuser builds and persists a superuser.
func CreateSuperuser(db *gorm.DB, email, password string, fields UserFields) (*models.User, error) {
	user, err := NewSuperuser(email, password, fields)
	if err != nil {
		return nil, err
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CheckPassword reports whether the plaintext password matches the
// stored bcrypt hash.
func CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
