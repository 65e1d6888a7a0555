package productControllers

import (
	"net/http"

	"github.com/Fayzullaev99/multishop/controllers/uploads"
	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UploadProductPhoto adds a gallery image to a product. The first
// uploaded image becomes the product's cover photo.
// POST /admin/products/:id/photos
func UploadProductPhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		url, err := uploads.SaveImage(c, file, "products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		photo := models.Gallery{ProductID: product.ID, Image: url}
		if err := db.Create(&photo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
			return
		}

		c.JSON(http.StatusCreated, photo)
	}
}

// DeleteProductPhoto removes a single gallery image.
// DELETE /admin/products/:id/photos/:photo_id
func DeleteProductPhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("product_id = ?", c.Param("id")).
			Delete(&models.Gallery{}, "id = ?", c.Param("photo_id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Photo deleted"})
	}
}
