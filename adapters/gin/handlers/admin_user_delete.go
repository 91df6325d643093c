package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandleAdminUserDELETE handles DELETE /api/admin/users/:id (admin only)
func HandleAdminUserDELETE(svc core.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := svc.DeleteAdmin(c.Request.Context(), id)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin user deleted successfully"})
		case errors.Is(err, core.ErrAdminNotFound):
			ginutil.NotFound(c, "admin_not_found")
		default:
			ginutil.ServerErrWithLog(c, "admin_delete_failed", err, "admin deletion failed")
		}
	}
}
