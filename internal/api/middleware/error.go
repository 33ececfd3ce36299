package middleware

import (
	"fmt"
	"net/http"

	"hybridretrofit/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers panics and reports them in the same
// models.ErrorResponse envelope handlers use for ordinary errors.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "an unexpected error occurred"
		if err, ok := recovered.(error); ok {
			message = err.Error()
		} else if s, ok := recovered.(string); ok {
			message = s
		} else if recovered != nil {
			message = fmt.Sprintf("%v", recovered)
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
		c.Abort()
	})
}
