package users

import (
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes configures passenger identity routes
func SetupUserRoutes(rg *gin.RouterGroup, controller *Controller) {
	usersGroup := rg.Group("/users")
	{
		usersGroup.POST("/get-or-create", controller.GetOrCreate) // POST /api/v1/users/get-or-create
	}
}
