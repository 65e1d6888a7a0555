package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Default fallback images, overridable via env. Kept as two separate
// URLs: categories and products fall back to different placeholders.
const (
	DefaultCategoryFallbackImage = "https://thumbs.dreamstime.com/b/no-image-available-icon-flat-vector-no-image-available-icon-flat-vector-illustration-132482953.jpg"
	DefaultProductFallbackImage  = "https://thumbs.dreamstime.com/b/no-image-available-icon-sign-isolated-white-background-simple-vector-logo-no-image-available-icon-sign-isolated-white-271600539.jpg"
)

type Config struct {
	// Server settings
	Port        string
	DatabaseURL string

	// Postgres (used when DATABASE_URL is not set)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// JWT settings
	JWTSecret string

	// Admin API key
	AdminAPIKey string

	// Image storage
	UploadDir        string
	UploadPublicPath string

	// Fallback image URLs returned when a photo lookup fails
	CategoryFallbackImage string
	ProductFallbackImage  string
}

// Load reads the process configuration once at startup. The returned
// Config is never mutated afterwards.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "multishop"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		UploadPublicPath: getEnv("UPLOAD_PUBLIC_PATH", "/uploads"),

		CategoryFallbackImage: getEnv("CATEGORY_FALLBACK_IMAGE", DefaultCategoryFallbackImage),
		ProductFallbackImage:  getEnv("PRODUCT_FALLBACK_IMAGE", DefaultProductFallbackImage),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
