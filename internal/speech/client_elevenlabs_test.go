package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestElevenLabsClient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/text-to-speech/voice-1" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("xi-api-key") != "secret" || r.Header.Get("Accept") != "audio/mpeg" {
			http.Error(w, "bad headers", http.StatusUnauthorized)
			return
		}
		var body elevenLabsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if body.Text != "नमस्ते" || body.LanguageCode != "hi" || body.ModelID != DefaultElevenLabsModel {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3-audio"))
	}))
	defer srv.Close()

	c := NewElevenLabsClient(ElevenLabsOptions{APIKey: "secret", BaseURL: srv.URL + "/", VoiceID: "voice-1"})
	audio, err := c.Synthesize(context.Background(), "नमस्ते", "hi")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(audio) != "ID3-audio" {
		t.Fatalf("unexpected audio %q", audio)
	}
}

func TestElevenLabsClientError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"quota_exceeded"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewElevenLabsClient(ElevenLabsOptions{APIKey: "secret", BaseURL: srv.URL})
	if _, err := c.Synthesize(context.Background(), "text", "ta"); err == nil {
		t.Fatal("expected error on 401")
	}
}
