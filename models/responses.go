package models

import "time"

// MoodEntryResponse 心情记录响应结构体
type MoodEntryResponse struct {
	ID                  string    `json:"id"`
	MoodLog             string    `json:"moodLog"`
	MoodScore           int       `json:"moodScore"`
	TherapeuticResponse string    `json:"therapeuticResponse"`
	Timestamp           time.Time `json:"timestamp"`
}

// GemResponse 收藏记录响应结构体
type GemResponse struct {
	ID                  string    `json:"id"`
	SourceEntryID       string    `json:"sourceEntryId"`
	MoodLog             string    `json:"moodLog"`
	MoodScore           int       `json:"moodScore"`
	TherapeuticResponse string    `json:"therapeuticResponse"`
	Timestamp           time.Time `json:"timestamp"`
	PromotedAt          time.Time `json:"promotedAt"`
}

// ProfileResponse 情绪档案响应结构体
type ProfileResponse struct {
	EmotionalProfile string    `json:"emotionalProfile"`
	TrainingGoals    string    `json:"trainingGoals"`
	LastModified     time.Time `json:"lastModified"`
}

func (e *MoodEntry) ToResponse() MoodEntryResponse {
	return MoodEntryResponse{
		ID:                  e.ID,
		MoodLog:             e.MoodLog,
		MoodScore:           e.MoodScore,
		TherapeuticResponse: e.TherapeuticResponse,
		Timestamp:           e.Timestamp,
	}
}

func (g *ResilienceGem) ToResponse() GemResponse {
	return GemResponse{
		ID:                  g.ID,
		SourceEntryID:       g.SourceEntryID,
		MoodLog:             g.MoodLog,
		MoodScore:           g.MoodScore,
		TherapeuticResponse: g.TherapeuticResponse,
		Timestamp:           g.Timestamp,
		PromotedAt:          g.PromotedAt,
	}
}
