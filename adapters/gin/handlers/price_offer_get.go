package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// HandlePriceOfferGET handles GET /api/price-offer/:token
// The first successful fetch flips the offer's usage marker.
func HandlePriceOfferGET(svc core.Provider, rl ginutil.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLPriceOffer) {
			ginutil.TooMany(c, "rate_limited")
			return
		}
		token := c.Param("token")
		view, err := svc.FetchOffer(c.Request.Context(), token)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true, "offer": view})
		case errors.Is(err, core.ErrOfferNotFound):
			ginutil.NotFound(c, "offer_not_found")
		case errors.Is(err, core.ErrOfferExpired):
			ginutil.BadRequest(c, "offer_expired")
		default:
			ginutil.ServerErrWithLog(c, "offer_fetch_failed", err, "price offer fetch failed")
		}
	}
}
