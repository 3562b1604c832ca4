package routes

import (
	"recipefinder/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterFavouriteRoutes(router *gin.Engine, favouriteController *controllers.FavouriteController, requireSession gin.HandlerFunc) {
	favouriteRoutes := router.Group("/favourites")
	favouriteRoutes.Use(requireSession)
	{
		favouriteRoutes.POST("", favouriteController.CreateFavourite)
		favouriteRoutes.GET("", favouriteController.ListFavourites)
	}
}
