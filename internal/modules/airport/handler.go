package airport

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
	rg.GET("/airports", h.List)
	rg.GET("/airports/:id", h.Get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/airports", h.Create)
	rg.PUT("/airports/:id", h.Update)
	rg.DELETE("/airports/:id", h.Delete)
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

	airports, total, err := h.service.List(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list airports")
		return
	}
	response.OK(c, http.StatusOK, "Airport list", gin.H{
		"airports":   airports,
		"pagination": pagination.New(c.Request, total, page, limit),
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid airport id")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Airport not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load airport")
		return
	}
	response.OK(c, http.StatusOK, "Airport detail", a)
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create airport")
		return
	}
	response.OK(c, http.StatusCreated, "Airport created", a)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid airport id")
		return
	}

	var req UpsertAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Airport not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update airport")
		return
	}
	response.OK(c, http.StatusOK, "Airport updated", a)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid airport id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Airport not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete airport")
		return
	}
	response.OK(c, http.StatusOK, "Airport deleted", nil)
}
