package routes

import (
	basketControllers "github.com/Fayzullaev99/multishop/controllers/basket"
	engagementControllers "github.com/Fayzullaev99/multishop/controllers/engagement"
	userControllers "github.com/Fayzullaev99/multishop/controllers/user"
	"github.com/Fayzullaev99/multishop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Basket ────────────────
		basketGroup := userGroup.Group("/basket")
		{
			basketGroup.GET("/", basketControllers.GetBaskets(db))                  // GET /user/basket
			basketGroup.POST("/", basketControllers.AddItem(db))                    // POST /user/basket
			basketGroup.PUT("/items/:item_id", basketControllers.UpdateItem(db))    // PUT /user/basket/items/:item_id
			basketGroup.DELETE("/:product_id", basketControllers.RemoveProduct(db)) // DELETE /user/basket/:product_id
			basketGroup.DELETE("/", basketControllers.ClearBasket(db))              // DELETE /user/basket
		}

		// ──────────────── Likes ────────────────
		likeGroup := userGroup.Group("/likes")
		{
			likeGroup.GET("/", engagementControllers.GetMyLikes(db))                  // GET /user/likes
			likeGroup.POST("/", engagementControllers.LikeProduct(db))                // POST /user/likes
			likeGroup.DELETE("/:product_id", engagementControllers.UnlikeProduct(db)) // DELETE /user/likes/:product_id
		}
	}
}
