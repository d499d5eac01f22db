package controllers

import (
	"net/http"

	"MenteVivaGo/config"
	"MenteVivaGo/services"

	"github.com/gin-gonic/gin"
)

// QuotaController 查询和重置每日AI额度
type QuotaController struct {
	quotaService *services.QuotaService
}

func NewQuotaController(quotaService *services.QuotaService) *QuotaController {
	return &QuotaController{quotaService: quotaService}
}

// GetQuota 返回当前用户当日剩余额度
func (qc *QuotaController) GetQuota(c *gin.Context) {
	uid := c.GetString("uid")

	remaining, err := qc.quotaService.Remaining(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("查询额度失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询额度失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"remainingQuota": remaining})
}

// ResetQuota 重置某用户当日额度，仅限内部接口调用
func (qc *QuotaController) ResetQuota(c *gin.Context) {
	// 记录内部接口调用
	config.Logger.Infow("内部接口调用：重置额度",
		"sourceIP", c.ClientIP(),
		"userAgent", c.Request.UserAgent(),
	)

	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少uid参数"})
		return
	}

	if err := qc.quotaService.Reset(c.Request.Context(), uid); err != nil {
		config.Logger.Errorw("重置额度失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "重置额度失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "额度重置成功"})
}
