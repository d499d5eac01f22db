package controllers

import (
	"net/http"

	"MenteVivaGo/config"
	"MenteVivaGo/flows"
	"MenteVivaGo/models"
	"MenteVivaGo/services"

	"github.com/gin-gonic/gin"
)

// SpeechController 把文本合成为可直接播放的音频data URI
type SpeechController struct {
	speechService *services.SpeechService
}

func NewSpeechController(speechService *services.SpeechService) *SpeechController {
	return &SpeechController{speechService: speechService}
}

// SynthesizeSpeech 处理语音合成请求
func (sc *SpeechController) SynthesizeSpeech(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SynthesizeSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	output, err := sc.speechService.Synthesize(c.Request.Context(), flows.SynthesizeSpeechInput{
		Text: req.Text,
	})
	if err != nil {
		config.Logger.Errorw("语音合成失败", "error", err, "uid", uid)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
