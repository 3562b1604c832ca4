package routes

import (
	"recipefinder/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRecipeRoutes mounts the search endpoints behind limit, since
// every call spends provider quota.
func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController, limit gin.HandlerFunc) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Use(limit)
	{
		recipeRoutes.POST("/search", recipeController.Search)
		recipeRoutes.POST("/detail", recipeController.Detail)
	}
}
