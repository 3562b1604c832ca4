package routes

import (
	"recipefinder/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterOauthRoutes(router *gin.Engine, oauthController *controllers.OauthController) {
	oauthRoutes := router.Group("/auth")
	{
		oauthRoutes.POST("/oauth", oauthController.LoginOAuth)
		oauthRoutes.GET("/callback", oauthController.Callback)
	}
}
