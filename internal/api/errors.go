package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError represents an error response from the API.
type APIError struct {
	Code       string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code, message string, statusCode int) *APIError {
	return &APIError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// RespondWithError writes an error response to the client.
func RespondWithError(c *gin.Context, err *APIError) {
	requestID, _ := c.Get("request_id")
	reqIDStr, _ := requestID.(string)

	c.JSON(err.StatusCode, ErrorResponse{
		Error:     err.Code,
		Message:   err.Message,
		RequestID: reqIDStr,
	})
}

// RespondWithValidationError writes a validation error for a specific field.
func RespondWithValidationError(c *gin.Context, field, message string) {
	RespondWithError(c, NewAPIError(
		"invalid_parameter",
		fmt.Sprintf("Invalid value for '%s': %s", field, message),
		http.StatusBadRequest,
	))
}

// RespondWithMissingParam writes a missing parameter error.
func RespondWithMissingParam(c *gin.Context, param string) {
	RespondWithError(c, NewAPIError(
		"missing_parameter",
		fmt.Sprintf("Required parameter '%s' is missing", param),
		http.StatusBadRequest,
	))
}

// RespondWithNotFound writes a not found error for a specific resource.
func RespondWithNotFound(c *gin.Context, resource, identifier string) {
	RespondWithError(c, NewAPIError(
		"not_found",
		fmt.Sprintf("%s '%s' not found", resource, identifier),
		http.StatusNotFound,
	))
}
