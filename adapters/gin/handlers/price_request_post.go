package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandlePriceRequestPOST handles POST /api/price-request
// Recomputes the quote server-side and persists a tokenized offer.
func HandlePriceRequestPOST(svc core.Provider, rl ginutil.RateLimiter) gin.HandlerFunc {
	type priceData struct {
		VideosPerWeek       int  `json:"videosPerWeek"`
		PostsPerWeek        int  `json:"postsPerWeek"`
		IncludeAdManagement bool `json:"includeAdManagement"`
	}
	type priceReq struct {
		Email     string     `json:"email"`
		PriceData *priceData `json:"priceData"`
	}
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLPriceRequest) {
			ginutil.TooMany(c, "rate_limited")
			return
		}
		var req priceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid_request")
			return
		}
		if strings.TrimSpace(req.Email) == "" || req.PriceData == nil {
			ginutil.BadRequest(c, "email_and_price_data_required")
			return
		}

		offer, url, err := svc.CreateOffer(c.Request.Context(), req.Email,
			req.PriceData.VideosPerWeek, req.PriceData.PostsPerWeek, req.PriceData.IncludeAdManagement)
		if err != nil {
			ginutil.ServerErrWithLog(c, "offer_create_failed", err, "price offer persistence failed")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"token":    offer.Token,
			"priceUrl": url,
		})
	}
}
