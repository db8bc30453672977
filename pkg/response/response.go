package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response success envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse error envelope
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

// ── success ──

// OK 200
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 201
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ── errors ──

// Error generic error envelope
func Error(c *gin.Context, httpStatus int, message string, errs interface{}) {
	c.JSON(httpStatus, ErrorResponse{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string, errs interface{}) {
	Error(c, http.StatusBadRequest, message, errs)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "Too many requests, please retry later", nil)
}

// InternalError 500, the message of err is exposed to the caller
func InternalError(c *gin.Context, err error) {
	msg := "Internal server error"
	if err != nil {
		msg += ": " + err.Error()
	}
	Error(c, http.StatusInternalServerError, msg, nil)
}
