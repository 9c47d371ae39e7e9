package notification

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
	rg.GET("/notifications", h.List)
	rg.PATCH("/notifications/:id/read", h.MarkRead)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	items, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list notifications")
		return
	}
	response.OK(c, http.StatusOK, "Notification list", items)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid notification id")
		return
	}
	userID := c.GetInt64("user_id")

	if err := h.service.MarkRead(c.Request.Context(), id, userID); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Notification not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update notification")
		}
		return
	}
	response.OK(c, http.StatusOK, "Notification marked as read", nil)
}
