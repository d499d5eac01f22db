package controllers

import (
	"fmt"
	"net/http"
	"time"

	"MenteVivaGo/config"
	"MenteVivaGo/models"
	"MenteVivaGo/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

// CreateTestUser 创建测试用户
func (ac *AuthController) CreateTestUser(c *gin.Context) {
	now := time.Now().UTC()
	testUser := models.User{
		ID:         utils.GenerateID(),
		Username:   fmt.Sprintf("test_user_%d", now.Unix()),
		Email:      fmt.Sprintf("test_%d@example.com", now.Unix()),
		CreatedAt:  now,
		LastLogin:  &now,
		IsTestUser: true,
	}

	if err := config.DB.Create(&testUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建测试用户失败"})
		return
	}

	// 生成 JWT
	token, err := utils.GenerateToken(testUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	config.Logger.Infow("创建测试用户",
		"userID", testUser.ID,
		"username", testUser.Username,
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       testUser.ID,
			"username": testUser.Username,
			"email":    testUser.Email,
		},
	})
}
