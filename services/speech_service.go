package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"MenteVivaGo/flows"

	"github.com/go-redis/redis/v8"
)

// 合成结果的缓存时长，同一段文本不重复请求上游
const speechCacheTTL = 24 * time.Hour

// SpeechService 调用OpenAI兼容的TTS接口，把音频编码为data URI
// 输入输出契约由flows层定义，上游失败不重试不降级
type SpeechService struct {
	endpoint string
	apiKey   string
	voice    string
	client   *http.Client
	redis    *redis.Client
}

func NewSpeechService(endpoint, apiKey, voice string, redisClient *redis.Client) *SpeechService {
	return &SpeechService{
		endpoint: endpoint,
		apiKey:   apiKey,
		voice:    voice,
		client:   &http.Client{Timeout: 30 * time.Second},
		redis:    redisClient,
	}
}

// Synthesize 合成一段语音，命中缓存时不发起上游调用
func (s *SpeechService) Synthesize(ctx context.Context, input flows.SynthesizeSpeechInput) (*flows.SynthesizeSpeechOutput, error) {
	if v := flows.ValidateSpeechInput(input); v != nil {
		return nil, v
	}

	cacheKey := fmt.Sprintf("tts:%x", sha256.Sum256([]byte(s.voice+"|"+input.Text)))
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			return &flows.SynthesizeSpeechOutput{AudioDataURI: cached}, nil
		}
	}

	body := map[string]interface{}{
		"model": "tts-1",
		"input": input.Text,
		"voice": s.voice,
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", s.endpoint+"/audio/speech", bytes.NewReader(payload))
	if err != nil {
		return nil, &flows.UpstreamError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &flows.UpstreamError{
			Err:     fmt.Errorf("tts call: %w", err),
			Timeout: errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, &flows.UpstreamError{Err: fmt.Errorf("tts status %d: %s", resp.StatusCode, data)}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &flows.UpstreamError{Err: fmt.Errorf("read audio: %w", err)}
	}

	output := &flows.SynthesizeSpeechOutput{
		AudioDataURI: "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audio),
	}
	if v := flows.ValidateSpeechOutput(output); v != nil {
		return nil, v
	}

	if s.redis != nil {
		// 缓存失败不影响本次结果
		s.redis.Set(ctx, cacheKey, output.AudioDataURI, speechCacheTTL)
	}
	return output, nil
}
