package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skybook/internal/pkg/response"
	"skybook/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public auth endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/otp/verify", h.VerifyOTP)
	rg.POST("/auth/otp/resend", h.ResendOTP)
	rg.POST("/auth/password/forgot", h.ForgotPassword)
	rg.POST("/auth/password/reset", h.ResetPassword)
}

// RegisterProtectedRoutes mounts the endpoints that need a logged-in user.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Profile)
	rg.PUT("/auth/password", h.ChangePassword)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Validation failed", fieldList(fields))
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrEmailTaken:
			response.Error(c, http.StatusConflict, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to register")
		}
		return
	}
	response.OK(c, http.StatusCreated, "Registration successful, check your email for the OTP", u)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, u, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, err.Error())
		case ErrNotVerified:
			response.Error(c, http.StatusForbidden, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}
	response.OK(c, http.StatusOK, "Login successful", gin.H{"token": token, "user": u})
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.VerifyOTP(c.Request.Context(), req); err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, err.Error())
		case ErrAlreadyVerified:
			response.Error(c, http.StatusConflict, err.Error())
		case ErrInvalidOTP:
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to verify")
		}
		return
	}
	response.OK(c, http.StatusOK, "Account verified", nil)
}

func (h *Handler) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ResendOTP(c.Request.Context(), req); err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, err.Error())
		case ErrAlreadyVerified:
			response.Error(c, http.StatusConflict, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to resend OTP")
		}
		return
	}
	response.OK(c, http.StatusOK, "OTP sent", nil)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}
	response.OK(c, http.StatusOK, "If the email is registered, a reset link has been sent", nil)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		switch err {
		case ErrInvalidResetToken:
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}
	response.OK(c, http.StatusOK, "Password has been reset", nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID := c.GetInt64("user_id")

	if err := h.service.ChangePassword(c.Request.Context(), userID, req); err != nil {
		switch err {
		case ErrWrongPassword:
			response.Error(c, http.StatusBadRequest, err.Error())
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to change password")
		}
		return
	}
	response.OK(c, http.StatusOK, "Password changed", nil)
}

func (h *Handler) Profile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	u, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to load profile")
		}
		return
	}
	response.OK(c, http.StatusOK, "Profile", u)
}

func fieldList(fields map[string]string) string {
	out := ""
	for field, rule := range fields {
		if out != "" {
			out += "; "
		}
		out += field + ": " + rule
	}
	return out
}
