package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandleOTPVerifyPOST handles POST /api/otp/verify
// Checks the submitted code; success returns a session token that unlocks
// the calculated quote.
func HandleOTPVerifyPOST(svc core.Provider, rl ginutil.RateLimiter) gin.HandlerFunc {
	type verifyReq struct {
		PhoneNumber string `json:"phoneNumber"`
		OTP         string `json:"otp"`
	}
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLOTPVerify) {
			ginutil.TooMany(c, "rate_limited")
			return
		}
		var req verifyReq
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid_request")
			return
		}
		if strings.TrimSpace(req.PhoneNumber) == "" || strings.TrimSpace(req.OTP) == "" {
			ginutil.BadRequest(c, "phone_and_otp_required")
			return
		}

		_, err := svc.VerifyOTP(c.Request.Context(), req.PhoneNumber, req.OTP)
		switch {
		case err == nil:
			// fallthrough to token issuance below
		case errors.Is(err, core.ErrInvalidPhone):
			ginutil.BadRequest(c, "invalid_phone")
			return
		case errors.Is(err, core.ErrNoPendingCode):
			ginutil.BadRequest(c, "no_pending_code")
			return
		case errors.Is(err, core.ErrCodeExpired):
			ginutil.BadRequest(c, "code_expired")
			return
		case errors.Is(err, core.ErrInvalidCodeFormat):
			ginutil.BadRequest(c, "invalid_code_format")
			return
		case errors.Is(err, core.ErrCodeMismatch):
			ginutil.BadRequest(c, "code_mismatch")
			return
		default:
			ginutil.ServerErrWithLog(c, "verification_failed", err, "otp verify failed")
			return
		}

		token, expiresIn, err := svc.IssueSessionToken(req.PhoneNumber, "visitor")
		if err != nil {
			ginutil.ServerErrWithLog(c, "token_issue_failed", err, "session token issuance failed")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      "Phone number verified",
			"sessionToken": token,
			"expiresIn":    expiresIn,
		})
	}
}
