package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/controllers"
	"github.com/ria-dsouza/shelflife/middleware"
)

// initBookRoutes initializes the book and statistics routes
func initBookRoutes(router *gin.RouterGroup) {
	books := router.Group("/user")
	books.Use(middleware.AuthMiddleware())
	{
		books.GET("/books", controllers.GetBooks)
		books.GET("/books/:id", controllers.GetBookDetails)
		books.POST("/books", controllers.AddBook)
		books.PUT("/books/:id", controllers.EditBook)
		books.DELETE("/books/:id", controllers.DeleteBook)

		books.GET("/stats", controllers.GetReadingStats)
	}
}
