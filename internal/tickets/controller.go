package tickets

import (
	"errors"
	"net/http"

	"busly/internal/shared/utils/response"
	"busly/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

// Book handles POST /api/v1/booking
func (c *Controller) Book(ctx *gin.Context) {
	var req BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := c.service.Book(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSeatTaken):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Seat is already taken for this trip", nil, nil)
		case errors.Is(err, ErrTripNotFound):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Trip not found", nil, nil)
		case errors.Is(err, ErrNoSeatsAvailable):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "No seats available for this trip", nil, nil)
		default:
			c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Booking failed", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Ticket booked successfully", result, nil)
}

// UpdateTicketStatus handles PATCH /api/v1/tickets/:id/update-status
func (c *Controller) UpdateTicketStatus(ctx *gin.Context) {
	ticketID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid ticket ID", nil, nil)
		return
	}

	var req UpdateTicketStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := c.service.UpdateTicketStatus(ctx.Request.Context(), ticketID, req.PaymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid payment status", nil, nil)
		case errors.Is(err, ErrTicketNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Ticket not found", nil, nil)
		default:
			c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update ticket status", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket status updated successfully", result, nil)
}

// GetTicket handles GET /api/v1/tickets/:id. Passengers can only read their
// own tickets; admins can read any.
func (c *Controller) GetTicket(ctx *gin.Context) {
	ticketID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid ticket ID", nil, nil)
		return
	}

	result, err := c.service.GetTicket(ctx.Request.Context(), ticketID)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Ticket not found", nil, nil)
			return
		}
		c.log.LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get ticket", nil, nil)
		return
	}

	role, _ := ctx.Get("user_role")
	userID, _ := ctx.Get("user_id")
	if role != "ADMIN" && userID != result.PassengerID {
		response.RespondJSON(ctx, "error", http.StatusForbidden, "You do not have access to this ticket", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket retrieved successfully", result, nil)
}
