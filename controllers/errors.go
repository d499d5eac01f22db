package controllers

import (
	"errors"
	"net/http"

	"MenteVivaGo/flows"
	"MenteVivaGo/services"

	"github.com/gin-gonic/gin"
)

// respondError 把核心错误类型映射为HTTP状态码和用户可见信息
func respondError(c *gin.Context, err error) {
	var sv *flows.SchemaViolation
	var ue *flows.UpstreamError

	switch {
	case errors.As(err, &sv):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "输入或输出未通过结构校验",
			"field":  sv.Path,
			"detail": sv.Reason,
		})
	case errors.As(err, &ue):
		status := http.StatusBadGateway
		if ue.Timeout {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{"error": "AI服务暂时不可用，请稍后重试"})
	case errors.Is(err, services.ErrQuotaExceeded):
		c.JSON(http.StatusForbidden, gin.H{"error": "今日AI额度已用尽"})
	case errors.Is(err, services.ErrAlreadyPromoted):
		c.JSON(http.StatusConflict, gin.H{"error": "该记录已收藏"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务内部错误"})
	}
}
