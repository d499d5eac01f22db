package services

import (
	"context"
	"errors"
	"time"

	"MenteVivaGo/models"

	"gorm.io/gorm"
)

// ProfileService 管理每个用户的单例情绪档案
// 首次保存时创建，之后整体覆盖，最后写入者胜出
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get 返回情绪档案，尚未保存过时返回ErrNotFound
func (s *ProfileService) Get(ctx context.Context, uid string) (*models.EmotionalProfile, error) {
	var profile models.EmotionalProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", uid).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Save 保存情绪档案，存在则覆盖
func (s *ProfileService) Save(ctx context.Context, uid string, emotionalProfile, trainingGoals string) (*models.EmotionalProfile, error) {
	profile := models.EmotionalProfile{
		UserID:           uid,
		EmotionalProfile: emotionalProfile,
		TrainingGoals:    trainingGoals,
		LastModified:     time.Now().UTC(),
	}

	db := s.db.WithContext(ctx)
	var existing models.EmotionalProfile
	if err := db.Where("user_id = ?", uid).First(&existing).Error; err == nil {
		if err := db.Model(&existing).Select("*").Updates(profile).Error; err != nil {
			return nil, err
		}
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}
	} else {
		return nil, err
	}
	return &profile, nil
}
