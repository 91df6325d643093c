package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/core"
)

type stubLoginProvider struct {
	core.Provider
	admin *core.Admin
	err   error
}

func (s stubLoginProvider) AdminLogin(ctx context.Context, email, password string) (*core.Admin, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.admin, "tok_admin", nil
}

func TestHandleAdminLoginPOST_OK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := &core.Admin{ID: "a1", Email: "ana@example.com", Name: "Ana", Role: "admin"}
	r.POST("/api/admin/login", HandleAdminLoginPOST(stubLoginProvider{admin: admin}, nil))
	w := postJSON(t, r, "/api/admin/login", `{"email":"ana@example.com","password":"hunter22"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		Admin struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"admin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok_admin" || resp.Admin.ID != "a1" || resp.Admin.Role != "admin" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestHandleAdminLoginPOST_BadCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/login", HandleAdminLoginPOST(stubLoginProvider{err: core.ErrInvalidCredentials}, nil))
	w := postJSON(t, r, "/api/admin/login", `{"email":"ana@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestHandleAdminLoginPOST_NotAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/login", HandleAdminLoginPOST(stubLoginProvider{err: core.ErrNotAdmin}, nil))
	w := postJSON(t, r, "/api/admin/login", `{"email":"ana@example.com","password":"hunter22"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestHandleAdminLoginPOST_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/login", HandleAdminLoginPOST(stubLoginProvider{}, nil))
	w := postJSON(t, r, "/api/admin/login", `{"email":"ana@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
