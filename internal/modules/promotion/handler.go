package promotion

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

// RegisterRoutes mounts the admin-only promotion CRUD. The caller wraps the
// group with the admin middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/promotions", h.List)
	rg.GET("/promotions/:id", h.Get)
	rg.POST("/promotions", h.Create)
	rg.PUT("/promotions/:id", h.Update)
	rg.DELETE("/promotions/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidDiscount, ErrInvalidPeriod:
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create promotion")
		}
		return
	}
	response.OK(c, http.StatusCreated, "Promotion created", p)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid promotion id")
		return
	}

	var req UpsertPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrInvalidDiscount, ErrInvalidPeriod:
			response.Error(c, http.StatusBadRequest, err.Error())
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Promotion not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update promotion")
		}
		return
	}
	response.OK(c, http.StatusOK, "Promotion updated", p)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid promotion id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Promotion not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete promotion")
		}
		return
	}
	response.OK(c, http.StatusOK, "Promotion deleted", nil)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid promotion id")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Promotion not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to load promotion")
		}
		return
	}
	response.OK(c, http.StatusOK, "Promotion detail", p)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = pagination.DefaultLimit
	}

	promos, total, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list promotions")
		return
	}

	response.OK(c, http.StatusOK, "Promotion list", gin.H{
		"promotions": promos,
		"pagination": pagination.New(c.Request, total, page, limit),
	})
}
