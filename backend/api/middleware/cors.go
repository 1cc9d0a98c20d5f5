package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/RAJAT9988/news-publisher/backend/common"
)

// CORS accepts any origin in development mode. In production mode only the
// configured allow-list is accepted; every other origin is rejected.
func CORS() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-Id"}
	config.MaxAge = 12 * time.Hour

	if common.Mode == common.ModeProduction {
		config.AllowOrigins = common.AllowedOrigins
	} else {
		config.AllowAllOrigins = true
	}

	return cors.New(config)
}
