package routes

import (
	"MenteVivaGo/config"
	"MenteVivaGo/controllers"
	"MenteVivaGo/middleware"
	"MenteVivaGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, client *services.LLMClient, conf config.Config) {
	moodService := services.NewMoodService(config.DB, client.Chat)
	sanctuaryService := services.NewSanctuaryService(config.DB)
	profileService := services.NewProfileService(config.DB)
	speechService := services.NewSpeechService(conf.TTSEndpoint, conf.LLMAPIKey, conf.TTSVoice, config.RedisClient)
	quotaService := services.NewQuotaService(config.RedisClient, conf.DailyAIQuota)

	authController := controllers.AuthController{}
	moodController := controllers.NewMoodController(moodService, quotaService)
	gardenController := controllers.NewGardenController(moodService)
	dreamController := controllers.NewDreamController(client.Chat, quotaService)
	trainingController := controllers.NewTrainingController(client.Chat, quotaService)
	sanctuaryController := controllers.NewSanctuaryController(sanctuaryService)
	profileController := controllers.NewProfileController(profileService)
	speechController := controllers.NewSpeechController(speechService)
	quotaController := controllers.NewQuotaController(quotaService)

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/test-user", authController.CreateTestUser)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// 心情记录相关接口
		private.POST("/mood", moodController.CreateMoodEntry)
		private.GET("/mood/history", moodController.GetMoodHistory)
		private.GET("/mood/garden", gardenController.GetGarden)
		private.GET("/mood/trend", gardenController.GetTrend)

		// AI能力接口
		private.POST("/dream/interpret", dreamController.InterpretDream)
		private.POST("/training/plan", trainingController.GenerateTrainingPlan)
		private.POST("/speech/synthesize", speechController.SynthesizeSpeech)

		// 收藏相关接口
		private.POST("/sanctuary/gems", sanctuaryController.PromoteGem)
		private.GET("/sanctuary/gems", sanctuaryController.ListGems)
		private.DELETE("/sanctuary/gems/:id", sanctuaryController.RemoveGem)

		// 情绪档案接口
		private.GET("/profile", profileController.GetProfile)
		private.POST("/profile", profileController.SaveProfile)

		// 额度查询
		private.GET("/quota", quotaController.GetQuota)
	}

	// 内部路由组（仅限服务器内部调用）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	{
		internal.GET("/quota/reset", quotaController.ResetQuota)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
