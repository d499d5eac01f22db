package models

import "time"

// EmotionalProfile 用户情绪档案，每个用户至多一条，保存时整体覆盖
type EmotionalProfile struct {
	UserID           string    `gorm:"type:varchar(50);primaryKey" json:"user_id"`
	EmotionalProfile string    `gorm:"type:text" json:"emotionalProfile"`
	TrainingGoals    string    `gorm:"type:text" json:"trainingGoals"`
	LastModified     time.Time `json:"lastModified"`
}
