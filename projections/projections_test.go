package projections

import (
	"reflect"
	"testing"
	"time"

	"MenteVivaGo/models"
)

func entry(score int, ts time.Time) models.MoodEntry {
	return models.MoodEntry{
		ID:        ts.Format(time.RFC3339Nano),
		MoodScore: score,
		Timestamp: ts,
		UserID:    "u1",
	}
}

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  ItemType
	}{
		{10, Flower},
		{9, Flower},
		{8, Flower}, // 下界为闭区间
		{7, Plant},
		{4, Plant},
		{3, Rain},
		{1, Rain},
	}
	for _, tc := range cases {
		if got := classify(tc.score); got != tc.want {
			t.Errorf("classify(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestToGardenItemsSingleEntry(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	items := ToGardenItems([]models.MoodEntry{entry(9, now)}, 30)

	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Type != Flower || items[0].Score != 9 {
		t.Errorf("item = %+v, want flower/9", items[0])
	}
}

func TestToGardenItemsLimitAndOrder(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	var entries []models.MoodEntry
	for i := 0; i < 40; i++ {
		entries = append(entries, entry(1+i%10, now.Add(-time.Duration(i)*time.Hour)))
	}

	items := ToGardenItems(entries, 30)
	if len(items) != 30 {
		t.Fatalf("items = %d, want 30", len(items))
	}
	// 保持日志既有顺序
	for i, item := range items {
		if item.Score != entries[i].MoodScore {
			t.Fatalf("items[%d].Score = %d, want %d", i, item.Score, entries[i].MoodScore)
		}
	}
}

func TestToGardenItemsIdempotent(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{entry(8, now), entry(4, now.Add(-time.Hour)), entry(3, now.Add(-2*time.Hour))}

	first := ToGardenItems(entries, 30)
	second := ToGardenItems(entries, 30)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ToGardenItems is not idempotent: %+v != %+v", first, second)
	}
}

func TestToGardenItemsEmptyLog(t *testing.T) {
	if items := ToGardenItems(nil, 30); len(items) != 0 {
		t.Errorf("items = %d, want 0", len(items))
	}
}

func TestToTrendSeriesWindowAndOrder(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		entry(9, now.Add(-days(1))),
		entry(5, now.Add(-days(3))),
		entry(2, now.Add(-days(5))),
		entry(7, now.Add(-days(9))), // 窗口之外
	}

	series := ToTrendSeries(entries, now, 7*24*time.Hour)
	if len(series) != 3 {
		t.Fatalf("series = %d, want 3", len(series))
	}
	// 升序：2, 5, 9
	want := []int{2, 5, 9}
	for i, point := range series {
		if point.MoodScore != want[i] {
			t.Errorf("series[%d].MoodScore = %d, want %d", i, point.MoodScore, want[i])
		}
	}
}

// days 返回n天的时长
func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func TestToTrendSeriesBoundary(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour
	entries := []models.MoodEntry{
		entry(6, now.Add(-window)),                 // 恰好在边界上，不包含
		entry(8, now.Add(-window).Add(time.Second)), // 边界内
	}

	series := ToTrendSeries(entries, now, window)
	if len(series) != 1 {
		t.Fatalf("series = %d, want 1", len(series))
	}
	if series[0].MoodScore != 8 {
		t.Errorf("series[0].MoodScore = %d, want 8", series[0].MoodScore)
	}
}

func TestRenderable(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	one := ToTrendSeries([]models.MoodEntry{entry(5, now.Add(-time.Hour))}, now, 7*24*time.Hour)
	if Renderable(one) {
		t.Error("single point series should not be renderable")
	}

	two := ToTrendSeries([]models.MoodEntry{
		entry(5, now.Add(-time.Hour)),
		entry(6, now.Add(-2*time.Hour)),
	}, now, 7*24*time.Hour)
	if !Renderable(two) {
		t.Error("two point series should be renderable")
	}
}

func TestToRecentHistoryPrefix(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	var entries []models.MoodEntry
	for i := 0; i < 15; i++ {
		entries = append(entries, entry(1+i%10, now.Add(-time.Duration(i)*time.Hour)))
	}

	history := ToRecentHistory(entries, 10)
	if len(history) != 10 {
		t.Fatalf("history = %d, want 10", len(history))
	}
	if !reflect.DeepEqual(history, entries[:10]) {
		t.Error("history is not a prefix of the input order")
	}

	short := ToRecentHistory(entries[:3], 10)
	if len(short) != 3 {
		t.Errorf("short history = %d, want 3", len(short))
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.GardenLimit != 30 || cfg.HistoryLimit != 10 || cfg.TrendWindow != 7*24*time.Hour {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
