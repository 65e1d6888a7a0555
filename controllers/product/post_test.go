package productControllers

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		price   string
		wantErr bool
	}{
		{"19.99", false},
		{"999.99", false},
		{"0.00", false},
		{"1000.00", true}, // over decimal(5,2)
		{"-0.01", true},   // negative
		{"19.999", true},  // more than 2 decimal places
	}
	for _, tt := range tests {
		p, err := decimal.NewFromString(tt.price)
		if err != nil {
			t.Fatalf("bad test price %q: %v", tt.price, err)
		}
		if err := validatePrice(p); (err != nil) != tt.wantErr {
			t.Errorf("validatePrice(%s) error = %v, wantErr %v", tt.price, err, tt.wantErr)
		}
	}
}

func TestSlugPattern(t *testing.T) {
	valid := []string{"red-shirt", "shirt", "a1-b2-c3"}
	invalid := []string{"", "Red-Shirt", "red shirt", "-shirt", "shirt-", "sh!rt"}

	for _, s := range valid {
		if !slugPattern.MatchString(s) {
			t.Errorf("slug %q rejected, want accepted", s)
		}
	}
	for _, s := range invalid {
		if slugPattern.MatchString(s) {
			t.Errorf("slug %q accepted, want rejected", s)
		}
	}
}
