package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/Fayzullaev99/multishop/controllers/uploads"
	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /admin/subcategories
func CreateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		categoryIDStr := c.PostForm("category_id")
		if title == "" || categoryIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and category_id are required"})
			return
		}

		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}

		// Parent category must exist
		var category models.Category
		if err := db.First(&category, categoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		sub := models.SubCategory{
			Title:       title,
			Description: c.PostForm("description"),
			CategoryID:  uint(categoryID),
		}

		if file, err := c.FormFile("image"); err == nil {
			url, err := uploads.SaveImage(c, file, "subcategories")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			sub.Image = url
		}

		if err := db.Create(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
			return
		}
		c.JSON(http.StatusCreated, sub)
	}
}

// DELETE /admin/subcategories/:id
func DeleteSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.SubCategory{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subcategory"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted"})
	}
}
