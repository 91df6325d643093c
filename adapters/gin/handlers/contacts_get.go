package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandleContactsGET handles GET /api/contacts (admin only)
func HandleContactsGET(svc core.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		contacts, err := svc.ListContacts(c.Request.Context())
		if err != nil {
			ginutil.ServerErrWithLog(c, "contacts_list_failed", err, "contact listing failed")
			return
		}
		if contacts == nil {
			contacts = []core.Contact{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "contacts": contacts})
	}
}
