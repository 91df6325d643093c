package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandleOTPSendPOST handles POST /api/otp/send
// Issues a one-time code to the given phone number and dispatches it via SMS.
func HandleOTPSendPOST(svc core.Provider, rl ginutil.RateLimiter) gin.HandlerFunc {
	type sendReq struct {
		PhoneNumber string          `json:"phoneNumber"`
		UserData    json.RawMessage `json:"userData,omitempty"`
	}
	return func(c *gin.Context) {
		if !svc.HasSMSSender() {
			ginutil.ServerErrWithLog(c, "sms_unavailable", nil, "sms sender not configured")
			return
		}
		if !ginutil.AllowNamed(c, rl, ginutil.RLOTPSend) {
			ginutil.TooMany(c, "rate_limited")
			return
		}
		var req sendReq
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid_request")
			return
		}
		if strings.TrimSpace(req.PhoneNumber) == "" {
			ginutil.BadRequest(c, "phone_required")
			return
		}

		err := svc.SendOTP(c.Request.Context(), req.PhoneNumber, req.UserData)
		var cooldown *core.CooldownError
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
		case errors.Is(err, core.ErrInvalidPhone):
			ginutil.BadRequest(c, "invalid_phone")
		case errors.As(err, &cooldown):
			mins := cooldown.RetryMinutes()
			ginutil.TooMany(c, fmt.Sprintf("Please wait %d minute(s) before requesting a new code", mins))
		default:
			ginutil.ServerErrWithLog(c, "sms_dispatch_failed", err, "otp send failed")
		}
	}
}
