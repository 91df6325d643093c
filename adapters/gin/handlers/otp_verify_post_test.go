package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/core"
)

type stubVerifyProvider struct {
	core.Provider
	verifyErr error
	tokenErr  error
}

func (s stubVerifyProvider) VerifyOTP(ctx context.Context, phone, submitted string) (json.RawMessage, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return json.RawMessage(`{"name":"Ana"}`), nil
}

func (s stubVerifyProvider) IssueSessionToken(subject, role string) (string, int64, error) {
	if s.tokenErr != nil {
		return "", 0, s.tokenErr
	}
	return "tok_" + role, 86400, nil
}

func TestHandleOTPVerifyPOST_OK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/otp/verify", HandleOTPVerifyPOST(stubVerifyProvider{}, nil))
	w := postJSON(t, r, "/api/otp/verify", `{"phoneNumber":"0722123456","otp":"1234"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		SessionToken string `json:"sessionToken"`
		ExpiresIn    int64  `json:"expiresIn"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionToken != "tok_visitor" {
		t.Fatalf("sessionToken = %q, want visitor token", resp.SessionToken)
	}
	if resp.ExpiresIn != 86400 {
		t.Fatalf("expiresIn = %d, want 86400", resp.ExpiresIn)
	}
}

func TestHandleOTPVerifyPOST_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/otp/verify", HandleOTPVerifyPOST(stubVerifyProvider{}, nil))
	w := postJSON(t, r, "/api/otp/verify", `{"phoneNumber":"0722123456"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleOTPVerifyPOST_Errors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err  error
		want string
	}{
		{core.ErrNoPendingCode, "no_pending_code"},
		{core.ErrCodeExpired, "code_expired"},
		{core.ErrInvalidCodeFormat, "invalid_code_format"},
		{core.ErrCodeMismatch, "code_mismatch"},
	}
	for _, tc := range cases {
		r := gin.New()
		r.POST("/api/otp/verify", HandleOTPVerifyPOST(stubVerifyProvider{verifyErr: tc.err}, nil))
		w := postJSON(t, r, "/api/otp/verify", `{"phoneNumber":"0722123456","otp":"1234"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", tc.err, w.Code)
		}
		if !strings.Contains(w.Body.String(), tc.want) {
			t.Fatalf("%v: expected %q in body, got %s", tc.err, tc.want, w.Body.String())
		}
	}
}
