package models

// CreateMoodEntryRequest 心情记录创建请求结构体
type CreateMoodEntryRequest struct {
	MoodLog string `json:"moodLog" binding:"required"`
}

// InterpretDreamRequest 梦境解析请求结构体
type InterpretDreamRequest struct {
	DreamDescription string `json:"dreamDescription" binding:"required"`
}

// TrainingPlanRequest 情绪训练计划请求结构体
type TrainingPlanRequest struct {
	EmotionalProfile string `json:"emotionalProfile" binding:"required"`
	TrainingGoals    string `json:"trainingGoals" binding:"required"`
}

// SaveProfileRequest 情绪档案保存请求结构体
type SaveProfileRequest struct {
	EmotionalProfile string `json:"emotionalProfile"`
	TrainingGoals    string `json:"trainingGoals"`
}

// PromoteGemRequest 心情记录收藏请求结构体
type PromoteGemRequest struct {
	EntryID string `json:"entryId" binding:"required"`
}

// SynthesizeSpeechRequest 语音合成请求结构体
type SynthesizeSpeechRequest struct {
	Text string `json:"text" binding:"required"`
}
