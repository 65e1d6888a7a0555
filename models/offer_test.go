package models

import "testing"

func TestOfferApply(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		price   string
		want    string
	}{
		{"default percent", 10, "100.00", "90.00"},
		{"half off", 50, "19.99", "10.00"},
		{"zero percent", 0, "25.00", "25.00"},
		{"negative clamped to 0", -5, "25.00", "25.00"},
		{"over 100 clamped to 100", 150, "25.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Offer{Percent: tt.percent}
			if got := o.Apply(dec(tt.price)).StringFixed(2); got != tt.want {
				t.Errorf("Apply(%s) with %d%% = %s, want %s", tt.price, tt.percent, got, tt.want)
			}
		})
	}
}
