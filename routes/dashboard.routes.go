package routes

import (
	"recipefinder/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(router *gin.Engine, dashboardController *controllers.DashboardController, requireSession, limit gin.HandlerFunc) {
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(requireSession)
	{
		dashboardRoutes.GET("", dashboardController.Session)
		dashboardRoutes.POST("", limit, dashboardController.Aggregate)
	}
}
