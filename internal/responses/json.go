package responses

import "github.com/gin-gonic/gin"

// ListResponse wraps collection results.
type ListResponse struct {
	Items interface{} `json:"items"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is a plain greeting.
type MessageResponse struct {
	Message string `json:"message"`
}

// StoredResponse acknowledges a stored document.
type StoredResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Items(c *gin.Context, statusCode int, items interface{}) {
	c.JSON(statusCode, ListResponse{Items: items})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

func Stored(c *gin.Context, statusCode int, id string) {
	c.JSON(statusCode, StoredResponse{Status: "ok", ID: id})
}

func Fail(c *gin.Context, statusCode int, detail string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Detail: detail})
}
