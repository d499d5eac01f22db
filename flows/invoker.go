package flows

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// Capability 把一对输入输出契约绑定到固定的提示词模板
// 每个能力对应一次模型调用，入参出参都必须通过结构校验
type Capability[I any, O any] struct {
	Name        string
	System      string
	Render      func(I) string
	ValidateIn  func(I) *SchemaViolation
	ValidateOut func(*O) *SchemaViolation
}

// Invoke 执行一次能力调用：先校验输入，再调用模型，最后校验输出
// 严格一次上游调用，不重试；任何一侧校验失败都在此终止
func Invoke[I any, O any](ctx context.Context, model llms.Model, capability Capability[I, O], input I) (*O, error) {
	if v := capability.ValidateIn(input); v != nil {
		return nil, v
	}

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(capability.System)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(capability.Render(input))},
		},
	}

	resp, err := model.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		return nil, &UpstreamError{
			Err:     err,
			Timeout: errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded),
		}
	}
	if len(resp.Choices) == 0 {
		return nil, &UpstreamError{Err: errors.New("模型未返回内容")}
	}

	var out O
	if err := json.Unmarshal([]byte(extractJSON(resp.Choices[0].Content)), &out); err != nil {
		return nil, &SchemaViolation{Path: "$", Reason: "模型输出不是有效的JSON: " + err.Error()}
	}
	if v := capability.ValidateOut(&out); v != nil {
		return nil, v
	}
	return &out, nil
}

// extractJSON 剥离模型偶尔附带的markdown代码围栏
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if i := strings.LastIndex(content, "```"); i >= 0 {
			content = content[:i]
		}
	}
	return strings.TrimSpace(content)
}
