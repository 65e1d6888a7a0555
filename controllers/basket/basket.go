package basketControllers

import (
	"errors"
	"net/http"

	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type basketResponse struct {
	models.Basket
	TotalQuantity int    `json:"total_quantity"`
	TotalPrice    string `json:"total_price"`
}

func currentUserID(c *gin.Context) (uint, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userIDVal.(uint), true
}

// GetBaskets returns the user's basket rows with line items and fresh
// totals. Totals are recomputed on every request, never stored.
// GET /user/basket
func GetBaskets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var baskets []models.Basket
		err := db.
			Preload("Items", func(db *gorm.DB) *gorm.DB {
				return db.Order("added_at ASC")
			}).
			Preload("Items.Product").
			Preload("Product").
			Where("user_id = ?", userID).
			Find(&baskets).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch basket"})
			return
		}

		resp := make([]basketResponse, 0, len(baskets))
		grandTotal := decimal.Zero
		totalQuantity := 0
		for i := range baskets {
			qty := baskets[i].TotalQuantity()
			price := baskets[i].TotalPrice()
			totalQuantity += qty
			grandTotal = grandTotal.Add(price)
			resp = append(resp, basketResponse{
				Basket:        baskets[i],
				TotalQuantity: qty,
				TotalPrice:    price.StringFixed(2),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"baskets":        resp,
			"total_quantity": totalQuantity,
			"total_price":    grandTotal.StringFixed(2),
		})
	}
}

// AddItem adds a product line to the user's basket. The basket row for
// the (user, product) pair is created atomically; a concurrent add
// cannot violate the unique constraint. Each addition is its own line
// with its own quantity.
// POST /user/basket
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input AddItemInput
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

		var item models.BasketProduct
		err := db.Transaction(func(tx *gorm.DB) error {
			// Atomic insert of the unique (user, product) pair; a
			// losing concurrent insert degrades to the existing row.
			basket := models.Basket{UserID: &userID, ProductID: &product.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&basket).Error; err != nil {
				return err
			}
			if basket.ID == 0 {
				if err := tx.Where("user_id = ? AND product_id = ?", userID, product.ID).
					First(&basket).Error; err != nil {
					return err
				}
			}

			item = models.BasketProduct{
				BasketID:  basket.ID,
				ProductID: &product.ID,
				UserID:    &userID,
				Quantity:  input.Quantity,
			}
			return tx.Create(&item).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to basket"})
			return
		}

		item.Product = &product
		c.JSON(http.StatusCreated, gin.H{
			"item":        item,
			"total_price": item.TotalPrice().StringFixed(2),
		})
	}
}

// UpdateItem changes the quantity of one basket line.
// PUT /user/basket/items/:item_id
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.BasketProduct
		if err := db.Preload("Product").
			Where("id = ? AND user_id = ?", c.Param("item_id"), userID).
			First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Basket item not found"})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update basket item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"item":        item,
			"total_price": item.TotalPrice().StringFixed(2),
		})
	}
}

// RemoveProduct deletes the basket row for one product; its lines go
// with it (cascade).
// DELETE /user/basket/:product_id
func RemoveProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", userID, c.Param("product_id")).
			Delete(&models.Basket{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove product from basket"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Basket entry not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from basket"})
	}
}

// ClearBasket deletes every basket row of the user.
// DELETE /user/basket
func ClearBasket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		if err := db.Where("user_id = ?", userID).Delete(&models.Basket{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear basket"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Basket cleared"})
	}
}
