package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"MenteVivaGo/flows"
)

func ttsServer(t *testing.T, calls *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if r.URL.Path != "/audio/speech" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("fake-mp3-bytes"))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSpeechSynthesize(t *testing.T) {
	var calls int
	server := ttsServer(t, &calls)
	svc := NewSpeechService(server.URL, "test-key", "alloy", testRedis(t))

	out, err := svc.Synthesize(context.Background(), flows.SynthesizeSpeechInput{Text: "Respira hondo y suelta el aire despacio"})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !strings.HasPrefix(out.AudioDataURI, "data:audio/mpeg;base64,") {
		t.Errorf("AudioDataURI = %q", out.AudioDataURI)
	}
	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1", calls)
	}
}

func TestSpeechSynthesizeCacheHit(t *testing.T) {
	var calls int
	server := ttsServer(t, &calls)
	svc := NewSpeechService(server.URL, "test-key", "alloy", testRedis(t))
	input := flows.SynthesizeSpeechInput{Text: "Respira hondo y suelta el aire despacio"}

	first, err := svc.Synthesize(context.Background(), input)
	if err != nil {
		t.Fatalf("first Synthesize: %v", err)
	}
	second, err := svc.Synthesize(context.Background(), input)
	if err != nil {
		t.Fatalf("second Synthesize: %v", err)
	}

	if first.AudioDataURI != second.AudioDataURI {
		t.Error("cached result differs from original")
	}
	// 第二次命中缓存，不再请求上游
	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1", calls)
	}
}

func TestSpeechSynthesizeEmptyText(t *testing.T) {
	var calls int
	server := ttsServer(t, &calls)
	svc := NewSpeechService(server.URL, "test-key", "alloy", testRedis(t))

	_, err := svc.Synthesize(context.Background(), flows.SynthesizeSpeechInput{Text: ""})
	var sv *flows.SchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("error = %v, want *SchemaViolation", err)
	}
	if sv.Path != "text" {
		t.Errorf("path = %q, want text", sv.Path)
	}
	if calls != 0 {
		t.Errorf("upstream calls = %d, want 0", calls)
	}
}

func TestSpeechSynthesizeUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	svc := NewSpeechService(server.URL, "test-key", "alloy", testRedis(t))

	_, err := svc.Synthesize(context.Background(), flows.SynthesizeSpeechInput{Text: "hola"})
	var ue *flows.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
}
