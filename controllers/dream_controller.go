package controllers

import (
	"net/http"

	"MenteVivaGo/config"
	"MenteVivaGo/flows"
	"MenteVivaGo/models"
	"MenteVivaGo/services"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
)

// DreamController 梦境解析，结果不持久化，直接返回给调用方
type DreamController struct {
	model        llms.Model
	quotaService *services.QuotaService
}

func NewDreamController(model llms.Model, quotaService *services.QuotaService) *DreamController {
	return &DreamController{
		model:        model,
		quotaService: quotaService,
	}
}

// InterpretDream 处理梦境解析请求
func (dc *DreamController) InterpretDream(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.InterpretDreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := dc.quotaService.Consume(c.Request.Context(), uid); err != nil {
		config.Logger.Errorw("额度检查失败", "error", err, "uid", uid)
		respondError(c, err)
		return
	}

	output, err := flows.InterpretDream(c.Request.Context(), dc.model, flows.InterpretDreamInput{
		DreamDescription: req.DreamDescription,
	})
	if err != nil {
		config.Logger.Errorw("梦境解析失败", "error", err, "uid", uid)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
