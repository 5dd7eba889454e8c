package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AdvertiserIDKey = "advertiserID"
	UserIDKey       = "userID"

	headerAdvertiserID = "X-Advertiser-ID"
	headerUserID       = "X-User-ID"
)

// AdvertiserAuth trusts the identity headers set by the platform gateway
// after JWT verification; this service never sees raw tokens. Requests
// without an advertiser identity are rejected.
func AdvertiserAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		advertiserID := c.GetHeader(headerAdvertiserID)
		if advertiserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authentication required",
			})
			return
		}
		c.Set(AdvertiserIDKey, advertiserID)
		if userID := c.GetHeader(headerUserID); userID != "" {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// UserIdentity lifts the acting user's id when present, without requiring
// an advertiser identity. Used on participation endpoints.
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader(headerUserID); userID != "" {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}
