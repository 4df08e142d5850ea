package users

import (
	"errors"
	"net/http"

	"busly/internal/shared/utils/response"
	"busly/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
	log     *logger.Logger
}

func NewController(service Service) *Controller {
	return &Controller{
		service: service,
		log:     logger.GetDefault(),
	}
}

// GetOrCreate handles POST /api/v1/users/get-or-create
func (c *Controller) GetOrCreate(ctx *gin.Context) {
	var req GetOrCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := c.service.GetOrCreate(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Name and phone are required", nil, nil)
		case errors.Is(err, ErrConflict):
			response.RespondJSON(ctx, "error", http.StatusConflict, "An account with this phone already exists", nil, nil)
		default:
			c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to resolve passenger", nil, nil)
		}
		return
	}

	status := http.StatusOK
	message := "Passenger resolved successfully"
	if result.Created {
		status = http.StatusCreated
		message = "Passenger created successfully"
	}
	response.RespondJSON(ctx, "success", status, message, result, nil)
}
