package tickets

import (
	"busly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTicketRoutes configures booking and ticket routes
func SetupTicketRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Booking is open to any resolved passenger; the counter flow posts on
	// behalf of walk-in customers, so only the seat workflow guards apply.
	rg.POST("/booking", controller.Book) // POST /api/v1/booking

	tickets := rg.Group("/tickets")
	{
		tickets.PATCH("/:id/update-status", controller.UpdateTicketStatus) // PATCH /api/v1/tickets/:id/update-status
	}

	authed := rg.Group("/tickets")
	authed.Use(middleware.JWTAuth())
	{
		authed.GET("/:id", controller.GetTicket) // GET /api/v1/tickets/:id
	}
}
