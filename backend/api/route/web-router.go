package route

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"github.com/RAJAT9988/news-publisher/backend/common"
)

func setWebRouter(router *gin.Engine) {
	router.Use(static.Serve("/uploads", static.LocalFile(common.UploadPath, false)))
	router.Use(static.Serve("/", static.LocalFile(common.WebPath, false)))

	router.GET("/", servePage("index.html"))
	router.GET("/website", servePage("index.html"))
	router.GET("/admin", servePage("admin.html"))

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "API route not found",
			})
			return
		}
		c.Status(http.StatusNotFound)
	})
}

func servePage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(common.WebPath, name))
	}
}
