package routes

import (
	catalogControllers "github.com/Fayzullaev99/multishop/controllers/catalog"
	engagementControllers "github.com/Fayzullaev99/multishop/controllers/engagement"
	productControllers "github.com/Fayzullaev99/multishop/controllers/product"
	userControllers "github.com/Fayzullaev99/multishop/controllers/user"
	"github.com/Fayzullaev99/multishop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the
// admin API key plus a staff JWT.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey, middleware.ValidateToken, middleware.RequireStaff)
	{
		// ──────────────── Categories ────────────────
		adminGroup.POST("/categories", catalogControllers.CreateCategory(db))
		adminGroup.PUT("/categories/:id", catalogControllers.UpdateCategory(db))
		adminGroup.DELETE("/categories/:id", catalogControllers.DeleteCategory(db))
		adminGroup.POST("/subcategories", catalogControllers.CreateSubCategory(db))
		adminGroup.DELETE("/subcategories/:id", catalogControllers.DeleteSubCategory(db))

		// ──────────────── Offers & Partners ────────────────
		adminGroup.POST("/offers", catalogControllers.CreateOffer(db))
		adminGroup.DELETE("/offers/:id", catalogControllers.DeleteOffer(db))
		adminGroup.POST("/partners", catalogControllers.CreatePartner(db))
		adminGroup.DELETE("/partners/:id", catalogControllers.DeletePartner(db))

		// ──────────────── Products ────────────────
		adminGroup.POST("/products", productControllers.CreateProduct(db))
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))

		// ──────────────── Product Gallery ────────────────
		adminGroup.POST("/products/:id/photos", productControllers.UploadProductPhoto(db))
		adminGroup.DELETE("/products/:id/photos/:photo_id", productControllers.DeleteProductPhoto(db))

		// ──────────────── Users & Messages ────────────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/contacts", engagementControllers.GetContacts(db))
	}
}
