package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skybook/internal/pkg/pagination"
	"skybook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the authenticated passenger-facing endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.POST("/bookings/pay", h.Pay)
	rg.GET("/bookings", h.ListMine)
}

// RegisterAdminRoutes mounts the cross-user booking listing.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListAll)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID := c.GetInt64("user_id")

	b, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrFlightNotFound:
			response.Error(c, http.StatusNotFound, "Flight not found")
		case ErrEmptyParty, ErrPartyMismatch:
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}
	response.OK(c, http.StatusCreated, "Booking created", b)
}

func (h *Handler) Pay(c *gin.Context) {
	var req PayBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID := c.GetInt64("user_id")

	b, err := h.service.Pay(c.Request.Context(), userID, req)
	if err != nil {
		var invalid *InvalidInputError
		switch {
		case errors.As(err, &invalid):
			response.Error(c, http.StatusBadRequest, invalid.Error())
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "Booking is already paid")
		case errors.Is(err, ErrSeatTaken):
			response.Error(c, http.StatusConflict, "One or more seats are already booked")
		case errors.Is(err, ErrChargeFailed):
			response.Error(c, http.StatusBadGateway, "Payment was declined")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to process payment")
		}
		return
	}
	response.OK(c, http.StatusOK, "Payment successful", b)
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookings, err := h.service.ListByUser(c.Request.Context(), userID, c.Query("search"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	response.OK(c, http.StatusOK, "Booking list", bookings)
}

func (h *Handler) ListAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = pagination.DefaultPage
	}
	if limit < 1 {
		limit = pagination.DefaultLimit
	}

	bookings, total, err := h.service.ListAll(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	response.OK(c, http.StatusOK, "Booking list", gin.H{
		"bookings":   bookings,
		"pagination": pagination.New(c.Request, total, page, limit),
	})
}
