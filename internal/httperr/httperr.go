package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the body of every failed API response.
type HTTPError struct {
	Error string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func TooManyRequests(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, HTTPError{Error: message})
}
