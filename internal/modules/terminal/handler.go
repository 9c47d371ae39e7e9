package terminal

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
	rg.GET("/terminals", h.List)
	rg.GET("/terminals/:id", h.Get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/terminals", h.Create)
	rg.PUT("/terminals/:id", h.Update)
	rg.DELETE("/terminals/:id", h.Delete)
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

	terminals, total, err := h.service.List(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list terminals")
		return
	}
	response.OK(c, http.StatusOK, "Terminal list", gin.H{
		"terminals":  terminals,
		"pagination": pagination.New(c.Request, total, page, limit),
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid terminal id")
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Terminal not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load terminal")
		return
	}
	response.OK(c, http.StatusOK, "Terminal detail", t)
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if err == ErrAirportNotFound {
			response.Error(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create terminal")
		return
	}
	response.OK(c, http.StatusCreated, "Terminal created", t)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid terminal id")
		return
	}

	var req UpsertTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Terminal not found")
		case ErrAirportNotFound:
			response.Error(c, http.StatusUnprocessableEntity, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update terminal")
		}
		return
	}
	response.OK(c, http.StatusOK, "Terminal updated", t)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid terminal id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Terminal not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete terminal")
		return
	}
	response.OK(c, http.StatusOK, "Terminal deleted", nil)
}
