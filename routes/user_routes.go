package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/controllers"
	"github.com/ria-dsouza/shelflife/middleware"
)

// initUserRoutes initializes authentication and profile routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)
	router.POST("/demo-login", controllers.DemoLogin)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/reset-password", controllers.ResetPassword)

	// Protected profile routes
	profile := router.Group("/user")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("/profile", controllers.GetProfile)

		// Account mutations are disabled for the demo account
		restricted := profile.Group("/profile")
		restricted.Use(middleware.DemoRestrictedMiddleware())
		{
			restricted.PUT("/username", controllers.EditUsername)
			restricted.PUT("/email", controllers.EditEmail)
			restricted.PUT("/password", controllers.ChangePassword)
			restricted.DELETE("", controllers.DeleteAccount)
		}
	}
}
