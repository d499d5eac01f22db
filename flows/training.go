package flows

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/llms"
)

// 训练输入的最小长度
const (
	EmotionalProfileMinLen = 20
	TrainingGoalsMinLen    = 10
)

// TrainingPlanInput 情绪训练计划输入契约
type TrainingPlanInput struct {
	EmotionalProfile string `json:"emotionalProfile"`
	TrainingGoals    string `json:"trainingGoals"`
}

// TrainingExercise 训练计划中的单个练习
type TrainingExercise struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
}

// TrainingPlanOutput 情绪训练计划输出契约
type TrainingPlanOutput struct {
	Summary       string             `json:"summary"`
	Exercises     []TrainingExercise `json:"exercises"`
	Encouragement string             `json:"encouragement"`
}

const trainingSystemPrompt = `Eres un entrenador emocional basado en técnicas de terapia cognitivo-conductual y mindfulness.
A partir del perfil emocional del usuario y sus objetivos, diseña un plan de entrenamiento emocional personalizado:
1. Un resumen breve del enfoque del plan.
2. Entre 3 y 6 ejercicios concretos, cada uno con título, descripción práctica y frecuencia sugerida.
3. Un mensaje final de ánimo, cálido y realista.
No uses markdown. Responde únicamente con un JSON con esta forma exacta:
{"summary": "...", "exercises": [{"title": "...", "description": "...", "frequency": "..."}], "encouragement": "..."}`

// TrainingPlanner 情绪训练计划能力定义
func TrainingPlanner() Capability[TrainingPlanInput, TrainingPlanOutput] {
	return Capability[TrainingPlanInput, TrainingPlanOutput]{
		Name:   "emotionalTraining",
		System: trainingSystemPrompt,
		Render: func(in TrainingPlanInput) string {
			return fmt.Sprintf("Perfil emocional: %s\n\nObjetivos del entrenamiento: %s",
				in.EmotionalProfile, in.TrainingGoals)
		},
		ValidateIn: func(in TrainingPlanInput) *SchemaViolation {
			if utf8.RuneCountInString(strings.TrimSpace(in.EmotionalProfile)) < EmotionalProfileMinLen {
				return &SchemaViolation{Path: "emotionalProfile", Reason: fmt.Sprintf("至少需要%d个字符", EmotionalProfileMinLen)}
			}
			if utf8.RuneCountInString(strings.TrimSpace(in.TrainingGoals)) < TrainingGoalsMinLen {
				return &SchemaViolation{Path: "trainingGoals", Reason: fmt.Sprintf("至少需要%d个字符", TrainingGoalsMinLen)}
			}
			return nil
		},
		ValidateOut: func(out *TrainingPlanOutput) *SchemaViolation {
			if strings.TrimSpace(out.Summary) == "" {
				return &SchemaViolation{Path: "summary", Reason: "不能为空"}
			}
			if len(out.Exercises) == 0 {
				return &SchemaViolation{Path: "exercises", Reason: "至少需要一个练习"}
			}
			for i, ex := range out.Exercises {
				if strings.TrimSpace(ex.Title) == "" {
					return &SchemaViolation{Path: fmt.Sprintf("exercises[%d].title", i), Reason: "不能为空"}
				}
				if strings.TrimSpace(ex.Description) == "" {
					return &SchemaViolation{Path: fmt.Sprintf("exercises[%d].description", i), Reason: "不能为空"}
				}
			}
			return nil
		},
	}
}

// GenerateTrainingPlan 执行一次训练计划生成
func GenerateTrainingPlan(ctx context.Context, model llms.Model, input TrainingPlanInput) (*TrainingPlanOutput, error) {
	return Invoke(ctx, model, TrainingPlanner(), input)
}
