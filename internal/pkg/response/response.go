package response

import "github.com/gin-gonic/gin"

// OK writes the success envelope: {status: true, message, data}.
func OK(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, gin.H{
		"status":  true,
		"message": message,
		"data":    data,
	})
}

// Error writes the error envelope: {status: false, message, data: null}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  false,
		"message": message,
		"data":    nil,
	})
}

// ErrorWithDetail additionally carries a short machine-oriented err field.
// Provider internals never go through here; callers pass sanitized detail.
func ErrorWithDetail(c *gin.Context, statusCode int, message, detail string) {
	c.JSON(statusCode, gin.H{
		"status":  false,
		"message": message,
		"err":     detail,
		"data":    nil,
	})
}
