package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health GET / liveness check
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Server is running smoothly",
		"timestamp": time.Now(),
	})
}
