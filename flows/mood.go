package flows

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/llms"
)

// 心情日志的最小长度，只约束生成请求，不约束存储
const MoodLogMinLen = 10

// MoodTrackerInput 心情解析输入契约
type MoodTrackerInput struct {
	MoodLog     string `json:"moodLog"`
	UserProfile string `json:"userProfile,omitempty"`
}

// MoodTrackerOutput 心情解析输出契约
type MoodTrackerOutput struct {
	MoodScore           int    `json:"moodScore"`
	TherapeuticResponse string `json:"therapeuticResponse"`
}

const moodSystemPrompt = `Eres un acompañante emocional cálido y empático, con formación en psicología.
El usuario compartirá cómo se siente hoy. Tu tarea:
1. Asignar una puntuación de ánimo entera entre 1 (muy mal) y 10 (excelente).
2. Redactar una respuesta terapéutica breve y de apoyo, en segunda persona, sin diagnosticar.
No uses markdown. Responde únicamente con un JSON con esta forma exacta:
{"moodScore": 7, "therapeuticResponse": "..."}`

// MoodTracker 心情解析能力定义
func MoodTracker() Capability[MoodTrackerInput, MoodTrackerOutput] {
	return Capability[MoodTrackerInput, MoodTrackerOutput]{
		Name:   "moodTracker",
		System: moodSystemPrompt,
		Render: func(in MoodTrackerInput) string {
			var sb strings.Builder
			sb.WriteString(fmt.Sprintf("Registro de ánimo del usuario: %s", in.MoodLog))
			if in.UserProfile != "" {
				sb.WriteString(fmt.Sprintf("\n\nContexto sobre el usuario: %s", in.UserProfile))
			}
			return sb.String()
		},
		ValidateIn: func(in MoodTrackerInput) *SchemaViolation {
			if utf8.RuneCountInString(strings.TrimSpace(in.MoodLog)) < MoodLogMinLen {
				return &SchemaViolation{Path: "moodLog", Reason: fmt.Sprintf("至少需要%d个字符", MoodLogMinLen)}
			}
			return nil
		},
		ValidateOut: func(out *MoodTrackerOutput) *SchemaViolation {
			if out.MoodScore < 1 || out.MoodScore > 10 {
				return &SchemaViolation{Path: "moodScore", Reason: fmt.Sprintf("取值必须在[1,10]内，实际为%d", out.MoodScore)}
			}
			if strings.TrimSpace(out.TherapeuticResponse) == "" {
				return &SchemaViolation{Path: "therapeuticResponse", Reason: "不能为空"}
			}
			return nil
		},
	}
}

// InterpretMood 执行一次心情解析
func InterpretMood(ctx context.Context, model llms.Model, input MoodTrackerInput) (*MoodTrackerOutput, error) {
	return Invoke(ctx, model, MoodTracker(), input)
}
