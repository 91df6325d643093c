package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealthGET handles GET /api/health
func HandleHealthGET() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Server is running"})
	}
}
