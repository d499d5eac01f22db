package controllers

import (
	"net/http"

	"MenteVivaGo/config"
	"MenteVivaGo/models"
	"MenteVivaGo/projections"
	"MenteVivaGo/services"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	moodService  *services.MoodService
	quotaService *services.QuotaService
}

func NewMoodController(moodService *services.MoodService, quotaService *services.QuotaService) *MoodController {
	return &MoodController{
		moodService:  moodService,
		quotaService: quotaService,
	}
}

// CreateMoodEntry 处理心情记录创建：扣额度、调用AI、持久化
func (mc *MoodController) CreateMoodEntry(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// 检查并扣除当日额度
	remaining, err := mc.quotaService.Consume(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("额度检查失败", "error", err, "uid", uid)
		respondError(c, err)
		return
	}

	entry, err := mc.moodService.Create(c.Request.Context(), uid, req.MoodLog)
	if err != nil {
		config.Logger.Errorw("心情记录创建失败", "error", err, "uid", uid)
		respondError(c, err)
		return
	}

	config.Logger.Infow("心情记录创建成功",
		"uid", uid,
		"entryID", entry.ID,
		"moodScore", entry.MoodScore,
	)

	c.JSON(http.StatusOK, gin.H{
		"entry":          entry.ToResponse(),
		"remainingQuota": remaining,
	})
}

// GetMoodHistory 返回最近的心情记录，默认最多10条
func (mc *MoodController) GetMoodHistory(c *gin.Context) {
	uid := c.GetString("uid")

	entries, err := mc.moodService.History(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取心情历史失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取心情历史失败"})
		return
	}

	recent := projections.ToRecentHistory(entries, projections.Defaults().HistoryLimit)
	responses := make([]models.MoodEntryResponse, 0, len(recent))
	for i := range recent {
		responses = append(responses, recent[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": responses,
		"total":   len(entries),
	})
}
