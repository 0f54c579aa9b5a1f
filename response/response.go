package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes one page of a list result
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success answers 200 with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// SuccessWithMessage answers 200 with a custom message
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: message,
		Data: data,
	})
}

// Created answers 201 with the new resource
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// SuccessWithPagination answers 200 with a page of data
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Warning answers 200 with code 2 so the admin UI can show a warning banner
func Warning(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 2,
		Mess: message,
		Data: data,
	})
}

// ErrorWithStatus answers an arbitrary status with a message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError answers 500
func ServerError(c *gin.Context) {
	ErrorWithStatus(c, http.StatusInternalServerError, "Internal server error")
}

// ServerErrorMessage answers 500 with a specific message
func ServerErrorMessage(c *gin.Context, message string) {
	ErrorWithStatus(c, http.StatusInternalServerError, message)
}

// Unauthorized answers 401
func Unauthorized(c *gin.Context) {
	ErrorWithStatus(c, http.StatusUnauthorized, "Unauthorized")
}

// NotFound answers 404
func NotFound(c *gin.Context) {
	ErrorWithStatus(c, http.StatusNotFound, "Not found")
}

// MethodNotAllowed answers 405
func MethodNotAllowed(c *gin.Context) {
	ErrorWithStatus(c, http.StatusMethodNotAllowed, "Method not allowed")
}

// BadRequest answers 400
func BadRequest(c *gin.Context, message string) {
	ErrorWithStatus(c, http.StatusBadRequest, message)
}

// Conflict answers 409
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Conflict"
	}
	ErrorWithStatus(c, http.StatusConflict, message)
}
