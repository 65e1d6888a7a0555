package engagementControllers

import (
	"net/http"

	"github.com/Fayzullaev99/multishop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactInput struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Subject  string `json:"subject" binding:"required,max=150"`
	Message  string `json:"message" binding:"required"`
}

// CreateContact stores an inbound contact-form message. Append-only;
// there is no update path.
// POST /contact
func CreateContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		contact := models.Contact{
			FullName: input.FullName,
			Email:    input.Email,
			Subject:  input.Subject,
			Message:  input.Message,
		}
		if err := db.Create(&contact).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}
		c.JSON(http.StatusCreated, contact)
	}
}

// GetContacts lists received messages, newest first.
// GET /admin/contacts
func GetContacts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contacts []models.Contact
		if err := db.Order("created_at DESC").Find(&contacts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}
		c.JSON(http.StatusOK, contacts)
	}
}
