package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandleAdminUsersGET handles GET /api/admin/users (admin only)
// Password hashes are excluded by the entity's JSON mapping.
func HandleAdminUsersGET(svc core.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		admins, err := svc.ListAdmins(c.Request.Context())
		if err != nil {
			ginutil.ServerErrWithLog(c, "admins_list_failed", err, "admin listing failed")
			return
		}
		if admins == nil {
			admins = []core.Admin{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "admins": admins})
	}
}
