package productControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type productResponse struct {
	models.Product
	FirstPhoto     string `json:"first_photo"`
	EffectivePrice string `json:"effective_price"`
	Likes          int64  `json:"likes"`
}

// GetProducts returns the catalog with filtering and pagination.
// Query params: search, category_id, size, min_price, max_price, page, per_page
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		size := strings.ToUpper(c.Query("size"))
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")

		query := db.Model(&models.Product{}).
			Preload("Photos", func(db *gorm.DB) *gorm.DB {
				return db.Order("id ASC")
			})

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("title ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}
		if categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", cid)
		}
		if size != "" {
			if !models.ValidSize(models.Size(size)) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size"})
				return
			}
			query = query.Where("size = ?", size)
		}
		// Filter on the effective price: sale when present, else price
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("COALESCE(sale, price) >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("COALESCE(sale, price) <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
		if page < 1 {
			page = 1
		}
		if perPage < 1 || perPage > 100 {
			perPage = 20
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Order("created_at DESC").
			Offset((page - 1) * perPage).
			Limit(perPage).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		items := make([]productResponse, 0, len(products))
		for i := range products {
			items = append(items, productResponse{
				Product:        products[i],
				FirstPhoto:     products[i].FirstPhoto(),
				EffectivePrice: products[i].EffectivePrice().StringFixed(2),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"products": items,
			"total":    total,
			"page":     page,
			"per_page": perPage,
		})
	}
}

// GetProductBySlug returns a single product with its photo gallery and
// like count. URL param: /products/:slug
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product slug is required"})
			return
		}

		var product models.Product
		err := db.
			Preload("Photos", func(db *gorm.DB) *gorm.DB {
				return db.Order("id ASC")
			}).
			Where("slug = ?", slug).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var likes int64
		if err := db.Model(&models.Like{}).Where("product_id = ?", product.ID).Count(&likes).Error; err != nil {
			likes = 0
		}

		c.JSON(http.StatusOK, productResponse{
			Product:        product,
			FirstPhoto:     product.FirstPhoto(),
			EffectivePrice: product.EffectivePrice().StringFixed(2),
			Likes:          likes,
		})
	}
}
