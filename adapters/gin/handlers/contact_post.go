package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandleContactPOST handles POST /api/contact
func HandleContactPOST(svc core.Provider, rl ginutil.RateLimiter) gin.HandlerFunc {
	type contactReq struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Service     string `json:"service"`
		Budget      string `json:"budget"`
		Description string `json:"description"`
	}
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLContactSubmit) {
			ginutil.TooMany(c, "rate_limited")
			return
		}
		var req contactReq
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid_request")
			return
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
			strings.TrimSpace(req.Service) == "" || strings.TrimSpace(req.Budget) == "" ||
			strings.TrimSpace(req.Description) == "" {
			ginutil.BadRequest(c, "all_fields_required")
			return
		}

		contact, err := svc.SubmitContact(c.Request.Context(), core.Contact{
			Name:        req.Name,
			Email:       req.Email,
			Service:     req.Service,
			Budget:      req.Budget,
			Description: req.Description,
		})
		if err != nil {
			ginutil.ServerErrWithLog(c, "contact_submit_failed", err, "contact persistence failed")
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Contact form submitted successfully",
			"id":      contact.ID,
		})
	}
}
