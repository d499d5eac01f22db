package models

import "time"

// MoodEntry 心情记录模型
// MoodScore 与 TherapeuticResponse 只能来自校验通过的AI输出，取值范围 [1,10]
type MoodEntry struct {
	ID                  string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	MoodLog             string    `gorm:"type:text" json:"moodLog"`
	MoodScore           int       `json:"moodScore"`
	TherapeuticResponse string    `gorm:"type:text" json:"therapeuticResponse"`
	Timestamp           time.Time `gorm:"index" json:"timestamp"`
	UserID              string    `gorm:"type:varchar(50);index" json:"user_id"`
}
