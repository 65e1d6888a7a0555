package auth

import (
	"errors"
	"testing"

	"github.com/Fayzullaev99/multishop/models"
	"golang.org/x/crypto/bcrypt"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user@Example.COM", "user@example.com"},
		{"  user@example.com  ", "user@example.com"},
		{"User@example.com", "User@example.com"}, // local part untouched
		{"no-at-sign", "no-at-sign"},
	}
	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		fields  UserFields
		wantErr error
	}{
		{"empty email", "", UserFields{}, ErrEmailRequired},
		{"whitespace email", "   ", UserFields{}, ErrEmailRequired},
		{"not an email", "not-an-email", UserFields{}, ErrInvalidEmail},
		{"display-name form", "John Doe <john@Example.COM>", UserFields{}, ErrInvalidEmail},
		{"angle brackets only", "<john@example.com>", UserFields{}, ErrInvalidEmail},
		{"bad country", "user@example.com", UserFields{Country: "USA"}, ErrInvalidCountry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.email, "secret123", tt.fields)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewUser() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewUserHashesPassword(t *testing.T) {
	user, err := NewUser("user@Example.COM", "secret123", UserFields{})
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}

	if user.Email != "user@example.com" {
		t.Errorf("email = %q, want normalized user@example.com", user.Email)
	}
	if user.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")); err != nil {
		t.Error("stored hash does not verify against the original password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("wrong-password")); err == nil {
		t.Error("stored hash verifies against a different password")
	}
	if !CheckPassword(user, "secret123") {
		t.Error("CheckPassword() = false for correct password")
	}
	if CheckPassword(user, "Secret123") {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestNewUserDefaults(t *testing.T) {
	user, err := NewUser("user@example.com", "secret123", UserFields{})
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	if user.Country != models.CountryUzbekistan {
		t.Errorf("country = %q, want default UZB", user.Country)
	}
	if user.IsStaff || user.IsSuperuser {
		t.Error("new user must not have staff flags set")
	}
}

func TestNewUserExplicitFlags(t *testing.T) {
	yes := true
	user, err := NewUser("admin@example.com", "secret123", UserFields{IsStaff: &yes, IsSuperuser: &yes})
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	if !user.IsStaff || !user.IsSuperuser {
		t.Error("explicit staff flags not applied")
	}
}

func TestNewSuperuserForcesFlags(t *testing.T) {
	// With no flags given, both must come out true
	user, err := NewSuperuser("admin@example.com", "secret123", UserFields{})
	if err != nil {
		t.Fatalf("NewSuperuser() error = %v", err)
	}
	if !user.IsStaff {
		t.Error("superuser created without is_staff=true")
	}
	if !user.IsSuperuser {
		t.Error("superuser created without is_superuser=true")
	}

	// Passing the flags explicitly as true is also fine
	yes := true
	user, err = NewSuperuser("admin2@example.com", "secret123", UserFields{IsStaff: &yes, IsSuperuser: &yes})
	if err != nil {
		t.Fatalf("NewSuperuser() with explicit true flags error = %v", err)
	}
	if !user.IsStaff || !user.IsSuperuser {
		t.Error("explicit true flags not preserved")
	}
}

func TestNewSuperuserRejectsContradictoryFlags(t *testing.T) {
	no := false

	_, err := NewSuperuser("admin@example.com", "secret123", UserFields{IsStaff: &no})
	if !errors.Is(err, ErrSuperuserStaff) {
		t.Errorf("NewSuperuser(is_staff=false) error = %v, want %v", err, ErrSuperuserStaff)
	}

	_, err = NewSuperuser("admin@example.com", "secret123", UserFields{IsSuperuser: &no})
	if !errors.Is(err, ErrSuperuserFlag) {
		t.Errorf("NewSuperuser(is_superuser=false) error = %v, want %v", err, ErrSuperuserFlag)
	}

	// CreateSuperuser delegates the check before any database access
	_, err = CreateSuperuser(nil, "admin@example.com", "secret123", UserFields{IsStaff: &no})
	if !errors.Is(err, ErrSuperuserStaff) {
		t.Errorf("CreateSuperuser(is_staff=false) error = %v, want %v", err, ErrSuperuserStaff)
	}
}
