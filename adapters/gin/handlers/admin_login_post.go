package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandleAdminLoginPOST handles POST /api/admin/login
func HandleAdminLoginPOST(svc core.Provider, rl ginutil.RateLimiter) gin.HandlerFunc {
	type loginReq struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLAdminLogin) {
			ginutil.TooMany(c, "rate_limited")
			return
		}
		var req loginReq
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid_request")
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			ginutil.BadRequest(c, "email_and_password_required")
			return
		}

		admin, token, err := svc.AdminLogin(c.Request.Context(), req.Email, req.Password)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Login successful",
				"token":   token,
				"admin": gin.H{
					"id":    admin.ID,
					"email": admin.Email,
					"name":  admin.Name,
					"role":  admin.Role,
				},
			})
		case errors.Is(err, core.ErrInvalidCredentials):
			ginutil.Unauthorized(c, "invalid_credentials")
		case errors.Is(err, core.ErrNotAdmin):
			ginutil.Unauthorized(c, "not_authorized_as_admin")
		default:
			ginutil.ServerErrWithLog(c, "login_failed", err, "admin login failed")
		}
	}
}
