package flows

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/llms"
)

// 梦境描述的最小长度
const DreamDescriptionMinLen = 20

// InterpretDreamInput 梦境解析输入契约
type InterpretDreamInput struct {
	DreamDescription string `json:"dreamDescription"`
}

// DreamSymbol 梦境中识别出的符号及其可能含义
type DreamSymbol struct {
	Symbol  string `json:"symbol"`
	Meaning string `json:"meaning"`
}

// InterpretDreamOutput 梦境解析输出契约
type InterpretDreamOutput struct {
	Interpretation     string        `json:"interpretation"`
	AssociatedEmotions []string      `json:"associatedEmotions"`
	DreamSymbols       []DreamSymbol `json:"dreamSymbols"`
}

const dreamSystemPrompt = `Eres un experto analista de sueños con conocimientos de psicología y simbolismo. Tu tarea es interpretar el sueño de un usuario de manera empática y perspicaz.

Analiza la descripción del sueño para proporcionar:
1. Una interpretación general que explore los posibles significados y temas subyacentes.
2. Una lista de emociones que el sueño podría evocar o reflejar.
3. Una lista de símbolos clave encontrados en el sueño, junto con sus posibles significados en el contexto del sueño.

Adopta un tono de apoyo y curiosidad. Evita hacer afirmaciones definitivas, en su lugar, utiliza frases como "podría sugerir", "a menudo simboliza" o "podrías estar explorando sentimientos de".
Responde únicamente con un JSON con esta forma exacta:
{"interpretation": "...", "associatedEmotions": ["..."], "dreamSymbols": [{"symbol": "...", "meaning": "..."}]}`

// InterpretDream 梦境解析能力定义
func DreamInterpreter() Capability[InterpretDreamInput, InterpretDreamOutput] {
	return Capability[InterpretDreamInput, InterpretDreamOutput]{
		Name:   "interpretDream",
		System: dreamSystemPrompt,
		Render: func(in InterpretDreamInput) string {
			return fmt.Sprintf("Descripción del sueño: %s", in.DreamDescription)
		},
		ValidateIn: func(in InterpretDreamInput) *SchemaViolation {
			if utf8.RuneCountInString(strings.TrimSpace(in.DreamDescription)) < DreamDescriptionMinLen {
				return &SchemaViolation{Path: "dreamDescription", Reason: fmt.Sprintf("至少需要%d个字符", DreamDescriptionMinLen)}
			}
			return nil
		},
		ValidateOut: func(out *InterpretDreamOutput) *SchemaViolation {
			if strings.TrimSpace(out.Interpretation) == "" {
				return &SchemaViolation{Path: "interpretation", Reason: "不能为空"}
			}
			for i, symbol := range out.DreamSymbols {
				if strings.TrimSpace(symbol.Symbol) == "" {
					return &SchemaViolation{Path: fmt.Sprintf("dreamSymbols[%d].symbol", i), Reason: "不能为空"}
				}
				if strings.TrimSpace(symbol.Meaning) == "" {
					return &SchemaViolation{Path: fmt.Sprintf("dreamSymbols[%d].meaning", i), Reason: "不能为空"}
				}
			}
			return nil
		},
	}
}

// InterpretDream 执行一次梦境解析
func InterpretDream(ctx context.Context, model llms.Model, input InterpretDreamInput) (*InterpretDreamOutput, error) {
	return Invoke(ctx, model, DreamInterpreter(), input)
}
