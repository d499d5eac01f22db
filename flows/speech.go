package flows

import "strings"

// SynthesizeSpeechInput 语音合成输入契约
// 上游是TTS接口而非对话模型，契约仍由本层定义，由 services.SpeechService 执行
type SynthesizeSpeechInput struct {
	Text string `json:"text"`
}

// SynthesizeSpeechOutput 语音合成输出契约
// AudioDataURI 是自描述的可直接播放的音频载荷，本层不解析其内部编码
type SynthesizeSpeechOutput struct {
	AudioDataURI string `json:"audioDataUri"`
}

// ValidateSpeechInput 校验语音合成输入
func ValidateSpeechInput(in SynthesizeSpeechInput) *SchemaViolation {
	if strings.TrimSpace(in.Text) == "" {
		return &SchemaViolation{Path: "text", Reason: "不能为空"}
	}
	return nil
}

// ValidateSpeechOutput 校验语音合成输出
func ValidateSpeechOutput(out *SynthesizeSpeechOutput) *SchemaViolation {
	if !strings.HasPrefix(out.AudioDataURI, "data:") {
		return &SchemaViolation{Path: "audioDataUri", Reason: "必须是data URI"}
	}
	return nil
}
