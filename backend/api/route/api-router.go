package route

import (
	"github.com/gin-gonic/gin"

	"github.com/RAJAT9988/news-publisher/backend/api/handler"
)

func SetApiRouter(router *gin.Engine) {
	apiRouter := router.Group("/api")
	{
		newsRoute := apiRouter.Group("/news")
		{
			newsRoute.GET("", handler.ListNews)
			newsRoute.GET("/:id", handler.GetNews)
			newsRoute.POST("", handler.CreateNews)
			newsRoute.DELETE("/:id", handler.DeleteNews)
		}

		apiRouter.GET("/status", handler.GetStatus)
	}
}
