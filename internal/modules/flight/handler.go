package flight

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skybook/internal/pkg/pagination"
	"skybook/internal/pkg/response"
	"skybook/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public search/detail endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/flights", h.Search)
	rg.GET("/flights/:id", h.Detail)
}

// RegisterAdminRoutes mounts the flight CRUD; the caller wraps the group
// with the admin middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/flights", h.Create)
	rg.PUT("/flights/:id", h.Update)
	rg.DELETE("/flights/:id", h.Delete)
}

func (h *Handler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = pagination.DefaultPage
	}
	if limit < 1 {
		limit = pagination.DefaultLimit
	}

	q := repository.FlightSearch{
		Search:        c.Query("search"),
		DepartureCity: c.Query("departure"),
		ArrivalCity:   c.Query("arrival"),
		SeatClass:     c.Query("seatClass"),
		Continent:     c.Query("continent"),
		Date:          c.Query("date"),
		SortBy:        c.Query("sortBy"),
	}

	flights, total, err := h.service.Search(c.Request.Context(), q, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to search flights")
		return
	}

	response.OK(c, http.StatusOK, "Flight list", gin.H{
		"flights":    flights,
		"pagination": pagination.New(c.Request, total, page, limit),
	})
}

func (h *Handler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid flight id")
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Flight not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to load flight")
		}
		return
	}
	response.OK(c, http.StatusOK, "Flight detail", detail)
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create flight")
		return
	}
	response.OK(c, http.StatusCreated, "Flight created", f)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid flight id")
		return
	}

	var req UpsertFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	f, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update flight")
		return
	}
	response.OK(c, http.StatusOK, "Flight updated", f)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid flight id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete flight")
		return
	}
	response.OK(c, http.StatusOK, "Flight deleted", nil)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrInvalidSchedule:
		response.Error(c, http.StatusBadRequest, err.Error())
	case ErrAirlineNotFound, ErrTerminalNotFound, ErrPromotionNotFound:
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
	case ErrDuplicateCode:
		response.Error(c, http.StatusConflict, err.Error())
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "Flight not found")
	default:
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
