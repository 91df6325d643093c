package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandleAdminUsersPOST handles POST /api/admin/users (admin only)
func HandleAdminUsersPOST(svc core.Provider) gin.HandlerFunc {
	type createReq struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	return func(c *gin.Context) {
		var req createReq
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid_request")
			return
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
			ginutil.BadRequest(c, "name_email_password_required")
			return
		}

		admin, err := svc.CreateAdmin(c.Request.Context(), req.Name, req.Email, req.Password)
		switch {
		case err == nil:
			c.JSON(http.StatusCreated, gin.H{
				"success": true,
				"message": "Admin user created successfully",
				"id":      admin.ID,
				"email":   admin.Email,
			})
		case errors.Is(err, core.ErrAdminExists):
			ginutil.BadRequest(c, "admin_already_exists")
		default:
			ginutil.ServerErrWithLog(c, "admin_create_failed", err, "admin creation failed")
		}
	}
}
