package apigin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/socialmotion/backend/adapters/ginutil"
	"github.com/socialmotion/backend/core"
)

// AuthRequired validates the Bearer session token (HS256), enforces expiry
// and the admin role, and stores the admin identity in context.
func AuthRequired(svc core.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ginutil.BearerToken(c.GetHeader("Authorization"))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, svc.Keyfunc())
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}
		if expUnix, ok := toUnix(claims["exp"]); ok {
			if time.Unix(expUnix, 0).Before(time.Now().Add(-time.Second)) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_expired"})
				return
			}
		}
		if role, _ := claims["role"].(string); role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_required"})
			return
		}
		if sub, _ := claims["sub"].(string); sub != "" {
			c.Set("auth.admin_id", sub)
		}
		c.Next()
	}
}

func toUnix(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case int64:
		return t, true
	case jwt.NumericDate:
		return t.Unix(), true
	}
	return 0, false
}
