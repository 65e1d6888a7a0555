package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email       string         `json:"email" binding:"required,email"`
	Password    string         `json:"password" binding:"required,min=8"`
	FirstName   string         `json:"first_name"`
	PhoneNumber string         `json:"phone_number"`
	Country     models.Country `json:"country"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := CreateUser(db, input.Email, input.Password, UserFields{
			FirstName:   input.FirstName,
			PhoneNumber: input.PhoneNumber,
			Country:     input.Country,
		})
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrDuplicatedKey):
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			case errors.Is(err, ErrEmailRequired), errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidCountry):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user":  user,
			"token": issueJWT(user),
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Login is by email, never by username
		var user models.User
		err := db.Where("email = ?", NormalizeEmail(input.Email)).First(&user).Error
		if err != nil || !CheckPassword(&user, input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  user,
			"token": issueJWT(&user),
		})
	}
}

// issueJWT generates a signed token for a user
func issueJWT(user *models.User) string {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_staff": user.IsStaff,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signedToken
}
