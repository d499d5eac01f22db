package models

import "time"

// ResilienceGem 收藏的心情记录副本，生命周期独立于原记录
type ResilienceGem struct {
	ID                  string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	SourceEntryID       string    `gorm:"type:varchar(50);index" json:"sourceEntryId"`
	MoodLog             string    `gorm:"type:text" json:"moodLog"`
	MoodScore           int       `json:"moodScore"`
	TherapeuticResponse string    `gorm:"type:text" json:"therapeuticResponse"`
	Timestamp           time.Time `json:"timestamp"`
	PromotedAt          time.Time `json:"promotedAt"`
	UserID              string    `gorm:"type:varchar(50);index" json:"user_id"`
}
