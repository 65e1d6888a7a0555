package routes

import (
	"github.com/Fayzullaev99/multishop/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db)) // POST /auth/register
		authGroup.POST("/login", auth.Login(db))       // POST /auth/login
	}
}
