package userControllers

import (
	"net/http"

	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	FirstName   *string         `json:"first_name"`
	LastName    *string         `json:"last_name"`
	PhoneNumber *string         `json:"phone_number"`
	Address1    *string         `json:"address1"`
	Address2    *string         `json:"address2"`
	Country     *models.Country `json:"country"`
	City        *string         `json:"city"`
	State       *string         `json:"state"`
	Zipcode     *string         `json:"zipcode"`
}

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var user models.User

		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "first_name", "last_name", "country", "is_staff", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// PUT /user
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var user models.User

		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Country != nil && !models.ValidCountry(*input.Country) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid country code"})
			return
		}

		updates := make(map[string]interface{})
		if input.FirstName != nil {
			updates["first_name"] = *input.FirstName
		}
		if input.LastName != nil {
			updates["last_name"] = *input.LastName
		}
		if input.PhoneNumber != nil {
			updates["phone_number"] = *input.PhoneNumber
		}
		if input.Address1 != nil {
			updates["address1"] = *input.Address1
		}
		if input.Address2 != nil {
			updates["address2"] = *input.Address2
		}
		if input.Country != nil {
			updates["country"] = *input.Country
		}
		if input.City != nil {
			updates["city"] = *input.City
		}
		if input.State != nil {
			updates["state"] = *input.State
		}
		if input.Zipcode != nil {
			updates["zipcode"] = *input.Zipcode
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}

		c.JSON(http.StatusOK, user)
	}
}
