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

// TrainingController 情绪训练计划生成，结果不持久化
type TrainingController struct {
	model        llms.Model
	quotaService *services.QuotaService
}

func NewTrainingController(model llms.Model, quotaService *services.QuotaService) *TrainingController {
	return &TrainingController{
		model:        model,
		quotaService: quotaService,
	}
}

// GenerateTrainingPlan 处理训练计划生成请求
func (tc *TrainingController) GenerateTrainingPlan(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.TrainingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := tc.quotaService.Consume(c.Request.Context(), uid); err != nil {
		config.Logger.Errorw("额度检查失败", "error", err, "uid", uid)
		respondError(c, err)
		return
	}

	output, err := flows.GenerateTrainingPlan(c.Request.Context(), tc.model, flows.TrainingPlanInput{
		EmotionalProfile: req.EmotionalProfile,
		TrainingGoals:    req.TrainingGoals,
	})
	if err != nil {
		config.Logger.Errorw("训练计划生成失败", "error", err, "uid", uid)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
