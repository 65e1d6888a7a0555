package productControllers

import (
	"errors"
	"net/http"

	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Title       *string          `json:"title"`
	Price       *decimal.Decimal `json:"price"`
	Sale        *decimal.Decimal `json:"sale"`
	ClearSale   bool             `json:"clear_sale"`
	Description *string          `json:"description"`
	Size        *models.Size     `json:"size"`
	Color       *string          `json:"color"`
	Info        *string          `json:"info"`
	CategoryID  *uint            `json:"category_id"`
	Quantity    *int             `json:"quantity"`
}

// UpdateProduct modifies an existing product. Slug and created_at are
// immutable. PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Price != nil {
			if err := validatePrice(*input.Price); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.Price = *input.Price
		}
		if input.Sale != nil {
			if err := validatePrice(*input.Sale); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "sale: " + err.Error()})
				return
			}
			product.Sale = input.Sale
		}
		if input.ClearSale {
			product.Sale = nil
		}
		if input.Size != nil {
			if !models.ValidSize(*input.Size) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size"})
				return
			}
			product.Size = *input.Size
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = category.ID
		}
		if input.Title != nil {
			product.Title = *input.Title
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Color != nil {
			product.Color = *input.Color
		}
		if input.Info != nil {
			product.Info = *input.Info
		}
		if input.Quantity != nil {
			product.Quantity = *input.Quantity
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
