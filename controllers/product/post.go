package productControllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Prices are decimal(5,2): at most 999.99
var maxPrice = decimal.NewFromFloat(999.99)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type ProductInput struct {
	Title       string           `json:"title" binding:"required,max=50"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	Sale        *decimal.Decimal `json:"sale"`
	Description string           `json:"description"`
	Size        models.Size      `json:"size"`
	Color       string           `json:"color"`
	Info        string           `json:"info"`
	CategoryID  uint             `json:"category_id" binding:"required"`
	Quantity    *int             `json:"quantity"`
	Slug        string           `json:"slug" binding:"required,max=50"`
}

func validatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return errors.New("price must not be negative")
	}
	if p.GreaterThan(maxPrice) {
		return errors.New("price must not exceed 999.99")
	}
	if p.Exponent() < -2 {
		return errors.New("price must have at most 2 decimal places")
	}
	return nil
}

// CreateProduct creates a product inside one category.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := validatePrice(input.Price); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Sale != nil {
			if err := validatePrice(*input.Sale); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "sale: " + err.Error()})
				return
			}
		}

		size := input.Size
		if size == "" {
			size = models.SizeMedium
		}
		if !models.ValidSize(size) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size"})
			return
		}

		slug := strings.ToLower(strings.TrimSpace(input.Slug))
		if !slugPattern.MatchString(slug) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slug may only contain lowercase letters, digits and hyphens"})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		description := input.Description
		if description == "" {
			description = models.DefaultDescription
		}
		info := input.Info
		if info == "" {
			info = models.DefaultInfo
		}
		quantity := 10
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		product := models.Product{
			Title:       input.Title,
			Price:       input.Price,
			Sale:        input.Sale,
			Description: description,
			Size:        size,
			Color:       input.Color,
			Info:        info,
			CategoryID:  category.ID,
			Quantity:    quantity,
			Slug:        slug,
		}

		if err := db.Create(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
