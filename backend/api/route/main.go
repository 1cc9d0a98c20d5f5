package route

import (
	"github.com/gin-gonic/gin"
)

// SetRouter registers the API routes, the page routes and the static
// fallthrough on the engine.
func SetRouter(router *gin.Engine) {
	SetApiRouter(router)
	setWebRouter(router)
}
