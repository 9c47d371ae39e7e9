package airline

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
	rg.GET("/airlines", h.List)
	rg.GET("/airlines/:id", h.Get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/airlines", h.Create)
	rg.PUT("/airlines/:id", h.Update)
	rg.DELETE("/airlines/:id", h.Delete)
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

	airlines, total, err := h.service.List(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list airlines")
		return
	}
	response.OK(c, http.StatusOK, "Airline list", gin.H{
		"airlines":   airlines,
		"pagination": pagination.New(c.Request, total, page, limit),
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid airline id")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Airline not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load airline")
		return
	}
	response.OK(c, http.StatusOK, "Airline detail", a)
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertAirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if err == ErrDuplicateCode {
			response.Error(c, http.StatusConflict, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create airline")
		return
	}
	response.OK(c, http.StatusCreated, "Airline created", a)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid airline id")
		return
	}

	var req UpsertAirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Airline not found")
		case ErrDuplicateCode:
			response.Error(c, http.StatusConflict, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update airline")
		}
		return
	}
	response.OK(c, http.StatusOK, "Airline updated", a)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid airline id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Airline not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete airline")
		return
	}
	response.OK(c, http.StatusOK, "Airline deleted", nil)
}
