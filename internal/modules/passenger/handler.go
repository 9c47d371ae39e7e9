package passenger

import (
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/passengers", h.Create)
	rg.GET("/bookings/:id/passengers", h.ListByBooking)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/passengers", h.List)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if err == ErrBookingNotFound {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create passenger")
		return
	}
	response.OK(c, http.StatusCreated, "Passenger created", p)
}

func (h *Handler) ListByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	passengers, err := h.service.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list passengers")
		return
	}
	response.OK(c, http.StatusOK, "Passenger list", passengers)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = pagination.DefaultPage
	}
	if limit < 1 {
		limit = pagination.DefaultLimit
	}

	passengers, total, err := h.service.List(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list passengers")
		return
	}
	response.OK(c, http.StatusOK, "Passenger list", gin.H{
		"passengers": passengers,
		"pagination": pagination.New(c.Request, total, page, limit),
	})
}
