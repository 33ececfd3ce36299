package handlers

import (
	"net/http"

	"hybridretrofit/internal/api/models"
	"hybridretrofit/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps err to the apperr-defined HTTP status and reports it in
// the models.ErrorResponse envelope. Non-apperr errors are treated as
// internal failures.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperr.As(err); ok {
		c.JSON(appErr.Status(), models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    string(appErr.Kind),
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		},
	})
}
