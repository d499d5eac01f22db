package services

import (
	"context"
	"time"

	"MenteVivaGo/flows"
	"MenteVivaGo/models"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"
)

// MoodService 负责心情记录的生成和持久化
// AI调用失败时不写入任何记录，日志保持原样
type MoodService struct {
	db    *gorm.DB
	model llms.Model
}

func NewMoodService(db *gorm.DB, model llms.Model) *MoodService {
	return &MoodService{db: db, model: model}
}

// Create 解析心情文本并持久化为一条新记录
// 持久化的分数和回应只能来自校验通过的一次flow调用
func (s *MoodService) Create(ctx context.Context, uid string, moodLog string) (*models.MoodEntry, error) {
	// 有情绪档案时作为上下文传给模型
	var profileHint string
	var profile models.EmotionalProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", uid).First(&profile).Error; err == nil {
		profileHint = profile.EmotionalProfile
	}

	output, err := flows.InterpretMood(ctx, s.model, flows.MoodTrackerInput{
		MoodLog:     moodLog,
		UserProfile: profileHint,
	})
	if err != nil {
		return nil, err
	}

	entry := models.MoodEntry{
		ID:                  uuid.New().String(),
		MoodLog:             moodLog,
		MoodScore:           output.MoodScore,
		TherapeuticResponse: output.TherapeuticResponse,
		Timestamp:           time.Now().UTC(),
		UserID:              uid,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// History 返回该用户的心情记录，最新在前
func (s *MoodService) History(ctx context.Context, uid string) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("timestamp DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
