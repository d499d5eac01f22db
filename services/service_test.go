package services

import (
	"context"
	"fmt"
	"testing"

	"MenteVivaGo/models"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB 每个测试用独立的内存数据库
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.MoodEntry{},
		&models.ResilienceGem{},
		&models.EmotionalProfile{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// mockModel 返回预设内容的对话模型
type mockModel struct {
	response string
	err      error
	calls    int
}

func (m *mockModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

func (m *mockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func seedEntry(t *testing.T, db *gorm.DB, uid string, score int) models.MoodEntry {
	t.Helper()
	svc := NewMoodService(db, &mockModel{
		response: fmt.Sprintf(`{"moodScore": %d, "therapeuticResponse": "respuesta de prueba"}`, score),
	})
	entry, err := svc.Create(context.Background(), uid, "Hoy fue un día con altibajos pero terminó bien")
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	return *entry
}
