package controllers

import (
	"net/http"

	"MenteVivaGo/config"
	"MenteVivaGo/models"
	"MenteVivaGo/services"

	"github.com/gin-gonic/gin"
)

// SanctuaryController 心情记录收藏的增删查
type SanctuaryController struct {
	sanctuaryService *services.SanctuaryService
}

func NewSanctuaryController(sanctuaryService *services.SanctuaryService) *SanctuaryController {
	return &SanctuaryController{sanctuaryService: sanctuaryService}
}

// PromoteGem 把一条心情记录收藏为gem
func (sc *SanctuaryController) PromoteGem(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.PromoteGemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	gem, err := sc.sanctuaryService.Promote(c.Request.Context(), uid, req.EntryID)
	if err != nil {
		config.Logger.Errorw("收藏失败", "error", err, "uid", uid, "entryID", req.EntryID)
		respondError(c, err)
		return
	}

	config.Logger.Infow("收藏成功", "uid", uid, "gemID", gem.ID, "entryID", req.EntryID)
	c.JSON(http.StatusOK, gem.ToResponse())
}

// ListGems 返回该用户的全部收藏
func (sc *SanctuaryController) ListGems(c *gin.Context) {
	uid := c.GetString("uid")

	gems, err := sc.sanctuaryService.List(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取收藏列表失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取收藏列表失败"})
		return
	}

	responses := make([]models.GemResponse, 0, len(gems))
	for i := range gems {
		responses = append(responses, gems[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"gems": responses})
}

// RemoveGem 删除一条收藏，不影响原始心情记录
func (sc *SanctuaryController) RemoveGem(c *gin.Context) {
	uid := c.GetString("uid")
	gemID := c.Param("id")

	if err := sc.sanctuaryService.Remove(c.Request.Context(), uid, gemID); err != nil {
		config.Logger.Errorw("删除收藏失败", "error", err, "uid", uid, "gemID", gemID)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
