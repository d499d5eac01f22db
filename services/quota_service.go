package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// QuotaService 基于Redis的每日AI调用额度
// 计数按自然日递增，首次计数时设置过期
type QuotaService struct {
	redis *redis.Client
	limit int
}

func NewQuotaService(redisClient *redis.Client, limit int) *QuotaService {
	return &QuotaService{redis: redisClient, limit: limit}
}

// Consume 消耗一次额度，返回剩余次数，超限时返回ErrQuotaExceeded
func (s *QuotaService) Consume(ctx context.Context, uid string) (int, error) {
	key := fmt.Sprintf("quota:%s:%s", uid, time.Now().UTC().Format("2006-01-02"))

	count, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		s.redis.Expire(ctx, key, 24*time.Hour)
	}
	if count > int64(s.limit) {
		return 0, ErrQuotaExceeded
	}
	return s.limit - int(count), nil
}

// Remaining 查询当日剩余额度，不消耗
func (s *QuotaService) Remaining(ctx context.Context, uid string) (int, error) {
	key := fmt.Sprintf("quota:%s:%s", uid, time.Now().UTC().Format("2006-01-02"))

	count, err := s.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		return 0, err
	}
	remaining := s.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Reset 清空某用户当日计数，仅供内部接口使用
func (s *QuotaService) Reset(ctx context.Context, uid string) error {
	key := fmt.Sprintf("quota:%s:%s", uid, time.Now().UTC().Format("2006-01-02"))
	return s.redis.Del(ctx, key).Err()
}
