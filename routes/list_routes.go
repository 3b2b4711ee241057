package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/controllers"
	"github.com/ria-dsouza/shelflife/middleware"
)

// initListRoutes initializes the book list routes
func initListRoutes(router *gin.RouterGroup) {
	lists := router.Group("/user")
	lists.Use(middleware.AuthMiddleware())
	{
		lists.GET("/lists", controllers.MyLists)
		lists.POST("/lists", controllers.CreateList)
		lists.GET("/lists/:id", controllers.GetListDetails)
		lists.DELETE("/lists/:id", controllers.DeleteList)

		lists.POST("/lists/:id/books", controllers.AddBooksToList)
		lists.DELETE("/lists/:id/books", controllers.RemoveBooksFromList)

		lists.GET("/lists/:id/export/csv", controllers.ExportListCSV)
		lists.GET("/lists/:id/export/pdf", controllers.ExportListPDF)
		lists.GET("/lists/:id/export/xlsx", controllers.ExportListXLSX)
	}
}
