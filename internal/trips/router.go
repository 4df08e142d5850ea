package trips

import (
	"busly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTripRoutes configures trip browsing and admin management routes
func SetupTripRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public routes - anyone can browse trips and routes
	publicTrips := rg.Group("/trips")
	{
		publicTrips.GET("", controller.SearchTrips) // GET /api/v1/trips?origin=&destination=&date=
		publicTrips.GET("/:id", controller.GetTrip) // GET /api/v1/trips/:id
	}

	publicRoutes := rg.Group("/routes")
	{
		publicRoutes.GET("", controller.ListRoutes) // GET /api/v1/routes
	}

	// Admin routes - schedule management
	adminTrips := rg.Group("/admin")
	adminTrips.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminTrips.POST("/trips", controller.CreateTrip)   // POST /api/v1/admin/trips
		adminTrips.POST("/routes", controller.CreateRoute) // POST /api/v1/admin/routes
	}
}
