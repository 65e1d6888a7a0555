package catalogControllers

import (
	"net/http"

	"github.com/Fayzullaev99/multishop/controllers/uploads"
	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /partners
func GetPartners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var partners []models.Partner
		if err := db.Find(&partners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partners"})
			return
		}
		c.JSON(http.StatusOK, partners)
	}
}

// POST /admin/partners
func CreatePartner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		partner := models.Partner{Title: c.PostForm("title")}

		if file, err := c.FormFile("image"); err == nil {
			url, err := uploads.SaveImage(c, file, "partners")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			partner.Image = url
		}

		if err := db.Create(&partner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner"})
			return
		}
		c.JSON(http.StatusCreated, partner)
	}
}

// DELETE /admin/partners/:id
func DeletePartner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Partner{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Partner deleted"})
	}
}
