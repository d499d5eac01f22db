package services

import (
	"context"
	"errors"
	"time"

	"MenteVivaGo/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SanctuaryService 管理收藏的心情记录副本
// 收藏与删除都不影响原始心情记录
type SanctuaryService struct {
	db *gorm.DB
}

func NewSanctuaryService(db *gorm.DB) *SanctuaryService {
	return &SanctuaryService{db: db}
}

// Promote 把一条心情记录复制为收藏，同一来源不允许重复收藏
func (s *SanctuaryService) Promote(ctx context.Context, uid string, entryID string) (*models.ResilienceGem, error) {
	var entry models.MoodEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, uid).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var existing models.ResilienceGem
	err = s.db.WithContext(ctx).
		Where("source_entry_id = ? AND user_id = ?", entryID, uid).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyPromoted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	gem := models.ResilienceGem{
		ID:                  uuid.New().String(),
		SourceEntryID:       entry.ID,
		MoodLog:             entry.MoodLog,
		MoodScore:           entry.MoodScore,
		TherapeuticResponse: entry.TherapeuticResponse,
		Timestamp:           entry.Timestamp,
		PromotedAt:          time.Now().UTC(),
		UserID:              uid,
	}
	if err := s.db.WithContext(ctx).Create(&gem).Error; err != nil {
		return nil, err
	}
	return &gem, nil
}

// List 返回该用户的收藏，最新收藏在前
func (s *SanctuaryService) List(ctx context.Context, uid string) ([]models.ResilienceGem, error) {
	var gems []models.ResilienceGem
	err := s.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("promoted_at DESC").
		Find(&gems).Error
	if err != nil {
		return nil, err
	}
	return gems, nil
}

// Remove 删除一条收藏，不存在时返回ErrNotFound
func (s *SanctuaryService) Remove(ctx context.Context, uid string, gemID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", gemID, uid).
		Delete(&models.ResilienceGem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
