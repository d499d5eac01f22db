// Package projections 把心情记录日志派生成花园、趋势和历史三种视图
// 所有函数都是纯函数且全量重算，不做增量维护，避免缓存失效类bug
package projections

import (
	"sort"
	"time"

	"MenteVivaGo/models"
)

// ItemType 花园格子类型
type ItemType string

const (
	Flower ItemType = "flower"
	Plant  ItemType = "plant"
	Rain   ItemType = "rain"
)

// GardenItem 按分数阈值派生的花园格子，不落库
type GardenItem struct {
	Type  ItemType `json:"type"`
	Score int      `json:"score"`
	Date  string   `json:"date"`
}

// TrendPoint 趋势图上的一个点，不落库
type TrendPoint struct {
	Date      string `json:"date"`
	MoodScore int    `json:"moodScore"`
}

// Config 派生视图的窗口常量，默认值与页面展示一致
type Config struct {
	GardenLimit  int
	TrendWindow  time.Duration
	HistoryLimit int
}

// Defaults 返回默认窗口配置：30个花园格子、7天趋势、10条历史
func Defaults() Config {
	return Config{
		GardenLimit:  30,
		TrendWindow:  7 * 24 * time.Hour,
		HistoryLimit: 10,
	}
}

// dateLabel 展示用日期格式，如 "2 Jan"
const dateLabel = "2 Jan"

// ToGardenItems 取日志前limit条（调用方保证最新在前），按分数阈值映射
// 阈值下界为闭区间：8分是flower，4分是plant，其余是rain
func ToGardenItems(entries []models.MoodEntry, limit int) []GardenItem {
	if limit < 0 {
		limit = 0
	}
	if limit > len(entries) {
		limit = len(entries)
	}
	items := make([]GardenItem, 0, limit)
	for _, entry := range entries[:limit] {
		items = append(items, GardenItem{
			Type:  classify(entry.MoodScore),
			Score: entry.MoodScore,
			Date:  entry.Timestamp.Format(dateLabel),
		})
	}
	return items
}

func classify(score int) ItemType {
	switch {
	case score >= 8:
		return Flower
	case score >= 4:
		return Plant
	default:
		return Rain
	}
}

// ToTrendSeries 过滤出 timestamp > now-window 的记录，按时间升序映射为趋势点
// now 由调用方显式传入，便于测试使用合成时钟
func ToTrendSeries(entries []models.MoodEntry, now time.Time, window time.Duration) []TrendPoint {
	cutoff := now.Add(-window)
	recent := make([]models.MoodEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Timestamp.After(cutoff) {
			recent = append(recent, entry)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.Before(recent[j].Timestamp)
	})

	points := make([]TrendPoint, 0, len(recent))
	for _, entry := range recent {
		points = append(points, TrendPoint{
			Date:      entry.Timestamp.Format(dateLabel),
			MoodScore: entry.MoodScore,
		})
	}
	return points
}

// Renderable 趋势序列只有在多于一个点时才可渲染
func Renderable(series []TrendPoint) bool {
	return len(series) > 1
}

// ToRecentHistory 取日志前limit条，保持输入顺序
func ToRecentHistory(entries []models.MoodEntry, limit int) []models.MoodEntry {
	if limit < 0 {
		limit = 0
	}
	if limit > len(entries) {
		limit = len(entries)
	}
	history := make([]models.MoodEntry, limit)
	copy(history, entries[:limit])
	return history
}
