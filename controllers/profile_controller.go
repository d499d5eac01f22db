package controllers

import (
	"errors"
	"net/http"

	"MenteVivaGo/config"
	"MenteVivaGo/models"
	"MenteVivaGo/services"

	"github.com/gin-gonic/gin"
)

// ProfileController 情绪档案单例的读写
type ProfileController struct {
	profileService *services.ProfileService
}

func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile 返回情绪档案，尚未保存过时返回空档案
func (pc *ProfileController) GetProfile(c *gin.Context) {
	uid := c.GetString("uid")

	profile, err := pc.profileService.Get(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, models.ProfileResponse{})
			return
		}
		config.Logger.Errorw("获取情绪档案失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取情绪档案失败"})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		EmotionalProfile: profile.EmotionalProfile,
		TrainingGoals:    profile.TrainingGoals,
		LastModified:     profile.LastModified,
	})
}

// SaveProfile 保存情绪档案，整体覆盖
func (pc *ProfileController) SaveProfile(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := pc.profileService.Save(c.Request.Context(), uid, req.EmotionalProfile, req.TrainingGoals)
	if err != nil {
		config.Logger.Errorw("保存情绪档案失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存情绪档案失败"})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		EmotionalProfile: profile.EmotionalProfile,
		TrainingGoals:    profile.TrainingGoals,
		LastModified:     profile.LastModified,
	})
}
