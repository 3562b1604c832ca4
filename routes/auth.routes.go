package routes

import (
	"recipefinder/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes mounts the sign-in endpoints. optionalSession attaches
// the current session, if any, for logout and the session lookup.
func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController, optionalSession gin.HandlerFunc) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/register", authController.Register)
		authRoutes.GET("/confirm", authController.Confirm)
	}
	sessionRoutes := router.Group("/auth")
	sessionRoutes.Use(optionalSession)
	{
		sessionRoutes.POST("/logout", authController.Logout)
		sessionRoutes.GET("/session", authController.Session)
	}
}
