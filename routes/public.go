package routes

import (
	catalogControllers "github.com/Fayzullaev99/multishop/controllers/catalog"
	engagementControllers "github.com/Fayzullaev99/multishop/controllers/engagement"
	productControllers "github.com/Fayzullaev99/multishop/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Catalog ────────────────
	r.GET("/categories", catalogControllers.GetCategories(db))        // GET /categories
	r.GET("/categories/:id", catalogControllers.GetCategoryByID(db))  // GET /categories/:id
	r.GET("/products", productControllers.GetProducts(db))            // GET /products
	r.GET("/products/:slug", productControllers.GetProductBySlug(db)) // GET /products/:slug
	r.GET("/offers", catalogControllers.GetOffers(db))                // GET /offers
	r.GET("/partners", catalogControllers.GetPartners(db))            // GET /partners

	// ──────────────── Contact form ────────────────
	r.POST("/contact", engagementControllers.CreateContact(db)) // POST /contact
}
