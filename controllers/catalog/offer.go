package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/Fayzullaev99/multishop/controllers/uploads"
	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /offers
func GetOffers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var offers []models.Offer
		if err := db.Find(&offers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offers"})
			return
		}
		c.JSON(http.StatusOK, offers)
	}
}

// POST /admin/offers
func CreateOffer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}

		// Percent is stored as given; discount callers clamp on use
		percent := 10
		if percentStr := c.PostForm("percent"); percentStr != "" {
			p, err := strconv.Atoi(percentStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid percent"})
				return
			}
			percent = p
		}

		offer := models.Offer{Title: title, Percent: percent}

		if file, err := c.FormFile("image"); err == nil {
			url, err := uploads.SaveImage(c, file, "offers")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			offer.Image = url
		}

		if err := db.Create(&offer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create offer"})
			return
		}
		c.JSON(http.StatusCreated, offer)
	}
}

// DELETE /admin/offers/:id
func DeleteOffer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Offer{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete offer"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Offer deleted"})
	}
}
