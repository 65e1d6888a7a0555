package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Fayzullaev99/multishop/auth"
	"github.com/Fayzullaev99/multishop/config"
	"github.com/Fayzullaev99/multishop/controllers/uploads"
	"github.com/Fayzullaev99/multishop/models"
	"github.com/Fayzullaev99/multishop/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load configuration (env + .env)
	cfg := config.Load()

	// Install process-wide settings before serving anything
	models.SetFallbackImages(cfg.CategoryFallbackImage, cfg.ProductFallbackImage)
	uploads.Configure(cfg.UploadDir, cfg.UploadPublicPath)

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.SubCategory{},
		&models.Offer{},
		&models.Product{},
		&models.Gallery{},
		&models.Partner{},
		&models.Like{},
		&models.Contact{},
		&models.Basket{},
		&models.BasketProduct{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// multishop createsuperuser <email> <password>
	if len(os.Args) > 1 && os.Args[1] == "createsuperuser" {
		createSuperuser(db, os.Args[2:])
		return
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static(uploads.PublicPath(), uploads.Dir())

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// createSuperuser creates a staff+superuser account from the command
// line and exits.
func createSuperuser(db *gorm.DB, args []string) {
	if len(args) < 2 {
		log.Fatal("usage: multishop createsuperuser <email> <password>")
	}
	user, err := auth.CreateSuperuser(db, args[0], args[1], auth.UserFields{})
	if err != nil {
		log.Fatalf("❌ Failed to create superuser: %v", err)
	}
	log.Printf("✅ Superuser %s created (id=%d)", user.Email, user.ID)
}

// initDatabase sets up the GORM DB connection. TranslateError lets
// duplicate-key violations surface as gorm.ErrDuplicatedKey.
func initDatabase(cfg *config.Config) *gorm.DB {
	gormCfg := &gorm.Config{TranslateError: true}

	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
