package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/RAJAT9988/news-publisher/backend/common"
)

func GetStatus(c *gin.Context) {
	common.RespSuccessData(c, gin.H{
		"version":    common.Version,
		"mode":       common.Mode,
		"start_time": common.StartTime,
	})
}
