package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/core"
)

type stubOfferProvider struct {
	core.Provider
	view *core.PriceOfferView
	err  error
}

func (s stubOfferProvider) FetchOffer(ctx context.Context, token string) (*core.PriceOfferView, error) {
	return s.view, s.err
}

func TestHandlePriceOfferGET_OK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	view := &core.PriceOfferView{Email: "ana@example.com", Price: core.CalculatePrice(2, 2, false)}
	r.GET("/api/price-offer/:token", HandlePriceOfferGET(stubOfferProvider{view: view}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/price-offer/abc123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "ana@example.com") {
		t.Fatalf("expected offer payload, got %s", w.Body.String())
	}
}

func TestHandlePriceOfferGET_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/price-offer/:token", HandlePriceOfferGET(stubOfferProvider{err: core.ErrOfferNotFound}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/price-offer/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandlePriceOfferGET_Expired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/price-offer/:token", HandlePriceOfferGET(stubOfferProvider{err: core.ErrOfferExpired}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/price-offer/stale", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "offer_expired") {
		t.Fatalf("expected offer_expired, got %s", w.Body.String())
	}
}
