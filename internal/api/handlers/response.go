package handlers

import (
	"errors"
	"net/http"

	apperrors "team-registration-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope returned by every endpoint. SecretKey is only
// populated on the single roster update that issued it.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	SecretKey string      `json:"secretKey,omitempty"`
	Count     int         `json:"count,omitempty"`
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Message: message, Data: data})
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: message})
}

// respondError maps the service error taxonomy onto HTTP statuses
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	case apperrors.IsValidation(err),
		apperrors.IsRosterViolation(err),
		errors.Is(err, apperrors.ErrMissingFile):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUploadTimeout):
		status = http.StatusGatewayTimeout
	case apperrors.IsUpload(err):
		status = http.StatusBadGateway
	}
	c.JSON(status, APIResponse{Success: false, Message: err.Error()})
}
