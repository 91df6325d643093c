package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/core"
)

type stubPriceProvider struct {
	core.Provider
	err error
}

func (s stubPriceProvider) CreateOffer(ctx context.Context, email string, videosPerWeek, postsPerWeek int, includeAdManagement bool) (*core.PriceOffer, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	offer := &core.PriceOffer{
		Token: "tok123",
		Email: email,
		Price: core.CalculatePrice(videosPerWeek, postsPerWeek, includeAdManagement),
	}
	return offer, "https://example.com/price-offer/tok123", nil
}

func TestHandlePriceRequestPOST_OK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/price-request", HandlePriceRequestPOST(stubPriceProvider{}, nil))
	w := postJSON(t, r, "/api/price-request",
		`{"email":"ana@example.com","priceData":{"videosPerWeek":2,"postsPerWeek":3,"includeAdManagement":true}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success  bool   `json:"success"`
		Token    string `json:"token"`
		PriceURL string `json:"priceUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Token != "tok123" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.PriceURL != "https://example.com/price-offer/tok123" {
		t.Fatalf("priceUrl = %q", resp.PriceURL)
	}
}

func TestHandlePriceRequestPOST_MissingData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/price-request", HandlePriceRequestPOST(stubPriceProvider{}, nil))

	for _, body := range []string{`{}`, `{"email":"ana@example.com"}`, `{"priceData":{"videosPerWeek":1}}`} {
		w := postJSON(t, r, "/api/price-request", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}
