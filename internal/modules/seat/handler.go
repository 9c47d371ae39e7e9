package seat

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skybook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/flights/:id/seats", h.ListByFlight)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/seats/:id/reserve", h.Reserve)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/flights/:id/seats", h.Regenerate)
}

func (h *Handler) ListByFlight(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid flight id")
		return
	}

	seats, err := h.service.ListByFlight(c.Request.Context(), flightID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list seats")
		return
	}
	response.OK(c, http.StatusOK, "Seat list", seats)
}

func (h *Handler) Reserve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid seat id")
		return
	}

	seat, err := h.service.Reserve(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Seat not found")
		case ErrAlreadyBooked:
			response.Error(c, http.StatusConflict, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to reserve seat")
		}
		return
	}
	response.OK(c, http.StatusOK, "Seat reserved", seat)
}

type regenerateRequest struct {
	TotalRows int `json:"totalRows" binding:"required,gt=0"`
}

func (h *Handler) Regenerate(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid flight id")
		return
	}

	var req regenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	seats, err := h.service.Regenerate(c.Request.Context(), flightID, req.TotalRows)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to rebuild seat map")
		return
	}
	response.OK(c, http.StatusOK, "Seat map rebuilt", seats)
}
