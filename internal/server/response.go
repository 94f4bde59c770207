package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"paylist/internal/parsererror"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapGenerateError translates a pipeline failure to its HTTP shape. Every
// failure of Generate stems from the pasted tables, so both map to 400;
// the code tells a missing input apart from an unparseable one.
func MapGenerateError(err error) (status int, code, msg string) {
	var inputErr *parsererror.InputError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest, "INVALID_INPUT", inputErr.Error()
	}
	return http.StatusBadRequest, "MALFORMED_TABLE", err.Error()
}
