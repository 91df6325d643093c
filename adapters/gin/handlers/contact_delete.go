package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandleContactDELETE handles DELETE /api/contacts/:id (admin only)
func HandleContactDELETE(svc core.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := svc.DeleteContact(c.Request.Context(), id)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact deleted successfully"})
		case errors.Is(err, core.ErrContactNotFound):
			ginutil.NotFound(c, "contact_not_found")
		default:
			ginutil.ServerErrWithLog(c, "contact_delete_failed", err, "contact deletion failed")
		}
	}
}
