package controllers

import (
	"net/http"
	"time"

	"MenteVivaGo/config"
	"MenteVivaGo/projections"
	"MenteVivaGo/services"

	"github.com/gin-gonic/gin"
)

// GardenController 提供花园和趋势两种派生视图
// 每次请求都从完整日志重算，不做缓存
type GardenController struct {
	moodService *services.MoodService
}

func NewGardenController(moodService *services.MoodService) *GardenController {
	return &GardenController{moodService: moodService}
}

// GetGarden 返回最近30条记录映射出的花园格子
func (gc *GardenController) GetGarden(c *gin.Context) {
	uid := c.GetString("uid")

	entries, err := gc.moodService.History(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取花园视图失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取花园视图失败"})
		return
	}

	items := projections.ToGardenItems(entries, projections.Defaults().GardenLimit)
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetTrend 返回近7天的趋势序列，不足两个点时标记为不可渲染
func (gc *GardenController) GetTrend(c *gin.Context) {
	uid := c.GetString("uid")

	entries, err := gc.moodService.History(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取趋势视图失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取趋势视图失败"})
		return
	}

	series := projections.ToTrendSeries(entries, time.Now().UTC(), projections.Defaults().TrendWindow)
	c.JSON(http.StatusOK, gin.H{
		"points":     series,
		"renderable": projections.Renderable(series),
	})
}
