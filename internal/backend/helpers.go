package backend

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, message string, details any) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

func respondInternalError(c *gin.Context, err error, operation string) {
	log.Printf("Backend: %s failed: %v", operation, err)
	respondError(c, http.StatusInternalServerError, operation+" failed", nil)
}
