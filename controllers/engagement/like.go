package engagementControllers

import (
	"errors"
	"net/http"

	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LikeInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// LikeProduct records a like. A user may like the same product more
// than once; there is no uniqueness constraint.
// POST /user/likes
func LikeProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input LikeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		like := models.Like{ProductID: product.ID, UserID: userID}
		if err := db.Create(&like).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like product"})
			return
		}
		c.JSON(http.StatusCreated, like)
	}
}

// UnlikeProduct removes all of the user's likes for a product.
// DELETE /user/likes/:product_id
func UnlikeProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		result := db.Where("user_id = ? AND product_id = ?", userID, c.Param("product_id")).
			Delete(&models.Like{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Like not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product unliked"})
	}
}

// GetMyLikes lists the user's liked products.
// GET /user/likes
func GetMyLikes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var likes []models.Like
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&likes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch likes"})
			return
		}
		c.JSON(http.StatusOK, likes)
	}
}
