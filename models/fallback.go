package models

import "github.com/Fayzullaev99/multishop/config"

// Fallback image URLs returned by Photo/FirstPhoto when no image can be
// resolved. Set once from config at startup, immutable afterwards.
var (
	categoryFallbackImage = config.DefaultCategoryFallbackImage
	productFallbackImage  = config.DefaultProductFallbackImage
)

// SetFallbackImages installs the configured fallback URLs. Called from
// main before the server starts handling requests.
func SetFallbackImages(category, product string) {
	if category != "" {
		categoryFallbackImage = category
	}
	if product != "" {
		productFallbackImage = product
	}
}
