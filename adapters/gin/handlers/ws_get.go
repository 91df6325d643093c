package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Hub accepts websocket upgrade requests for the live admin notification feed.
type Hub interface {
	Upgrade(w http.ResponseWriter, r *http.Request)
}

// HandleWSGET handles GET /ws
func HandleWSGET(hub Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub.Upgrade(c.Writer, c.Request)
	}
}
