package response

import (
	"github.com/BhavikPahuja/eBillingBackend/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ErrorBody is the minimal error shape every failure translates to
type ErrorBody struct {
	Error   string                `json:"error"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

// Error translates any error into its HTTP status and a minimal JSON body
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, ErrorBody{
		Error:   appErr.Message,
		Details: appErr.Errors,
	})
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	c.JSON(404, ErrorBody{Error: message})
}

// Created sends a 201 Created response
func Created(c *gin.Context, body interface{}) {
	c.JSON(201, body)
}

// OK sends a 200 OK response
func OK(c *gin.Context, body interface{}) {
	c.JSON(200, body)
}
