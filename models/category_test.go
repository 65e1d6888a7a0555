package models

import (
	"testing"

	"github.com/Fayzullaev99/multishop/config"
)

func TestCategoryPhotoFallback(t *testing.T) {
	c := Category{Title: "Shoes"}
	got := c.Photo()
	if got == "" {
		t.Fatal("Photo() returned empty string, want fallback URL")
	}
	if got != config.DefaultCategoryFallbackImage {
		t.Errorf("Photo() = %q, want category fallback", got)
	}

	c.Image = "/uploads/categories/shoes.jpg"
	if got := c.Photo(); got != "/uploads/categories/shoes.jpg" {
		t.Errorf("Photo() = %q, want assigned image", got)
	}
}

func TestFallbacksAreDistinct(t *testing.T) {
	// Categories and products fall back to different placeholders
	c := Category{}
	p := Product{}
	if c.Photo() == p.FirstPhoto() {
		t.Error("category and product fallback URLs must be distinct")
	}
}

func TestSetFallbackImages(t *testing.T) {
	defer SetFallbackImages(config.DefaultCategoryFallbackImage, config.DefaultProductFallbackImage)

	SetFallbackImages("https://cdn.example.com/cat.png", "https://cdn.example.com/prod.png")

	c := Category{}
	if got := c.Photo(); got != "https://cdn.example.com/cat.png" {
		t.Errorf("Photo() = %q, want configured fallback", got)
	}
	p := Product{}
	if got := p.FirstPhoto(); got != "https://cdn.example.com/prod.png" {
		t.Errorf("FirstPhoto() = %q, want configured fallback", got)
	}

	// Empty values leave the current setting untouched
	SetFallbackImages("", "")
	if got := c.Photo(); got != "https://cdn.example.com/cat.png" {
		t.Errorf("Photo() after empty set = %q, want previous value", got)
	}
}
