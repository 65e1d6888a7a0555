package models

import (
	"testing"

	"github.com/Fayzullaev99/multishop/config"
)

func TestEffectivePrice(t *testing.T) {
	sale := dec("14.99")

	p := Product{Price: dec("19.99")}
	if got := p.EffectivePrice(); !got.Equal(dec("19.99")) {
		t.Errorf("EffectivePrice() without sale = %s, want 19.99", got)
	}

	p.Sale = &sale
	if got := p.EffectivePrice(); !got.Equal(dec("14.99")) {
		t.Errorf("EffectivePrice() with sale = %s, want 14.99", got)
	}
}

func TestFirstPhoto(t *testing.T) {
	p := Product{}
	if got := p.FirstPhoto(); got != config.DefaultProductFallbackImage {
		t.Errorf("FirstPhoto() with no photos = %q, want product fallback", got)
	}

	p.Photos = []Gallery{
		{ID: 1, Image: "/uploads/products/a.jpg"},
		{ID: 2, Image: "/uploads/products/b.jpg"},
	}
	if got := p.FirstPhoto(); got != "/uploads/products/a.jpg" {
		t.Errorf("FirstPhoto() = %q, want first inserted image", got)
	}
}

func TestValidSize(t *testing.T) {
	for _, s := range []Size{SizeExtraSmall, SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge} {
		if !ValidSize(s) {
			t.Errorf("ValidSize(%q) = false, want true", s)
		}
	}
	for _, s := range []Size{"", "XXL", "m", "medium"} {
		if ValidSize(s) {
			t.Errorf("ValidSize(%q) = true, want false", s)
		}
	}
}
