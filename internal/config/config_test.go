package config

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"
)

var keys = []string{
	"HOST", "PORT", "API_PREFIX", "APP_ENV", "TRANSLATOR_BACKEND", "TTS_BACKEND",
	"TRANSLATE_TIMEOUT", "TTS_TIMEOUT", "OPENAI_API_KEY", "ELEVENLABS_API_KEY",
	"TELEGRAM_BOT_TOKEN", "TELEGRAM_ADMIN_CHAT_ID", "EXPOSE_ERROR_DETAILS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("expected 0.0.0.0:8000, got %s", cfg.Addr())
	}
	if cfg.APIPrefix != "/api/v1" {
		t.Errorf("expected /api/v1, got %s", cfg.APIPrefix)
	}
	if cfg.TranslatorBackend != TranslatorGoogle || cfg.TTSBackend != TTSGTTS {
		t.Errorf("unexpected backends %s/%s", cfg.TranslatorBackend, cfg.TTSBackend)
	}
	if cfg.TranslateTimeout != 15*time.Second || cfg.TTSTimeout != 30*time.Second {
		t.Errorf("unexpected timeouts %s/%s", cfg.TranslateTimeout, cfg.TTSTimeout)
	}
	if cfg.ExposeErrorDetails || cfg.TelegramEnabled() || cfg.Development() {
		t.Error("unexpected optional features enabled")
	}
}

func TestOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("API_PREFIX", "v2/")
	t.Setenv("TTS_BACKEND", "ElevenLabs")
	t.Setenv("ELEVENLABS_API_KEY", "k")
	t.Setenv("TTS_TIMEOUT", "5s")
	t.Setenv("TELEGRAM_BOT_TOKEN", "t")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "1139929360")
	t.Setenv("EXPOSE_ERROR_DETAILS", "true")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:9000" || cfg.APIPrefix != "/v2" {
		t.Errorf("unexpected addr/prefix %s %s", cfg.Addr(), cfg.APIPrefix)
	}
	if cfg.TTSBackend != TTSElevenLabs || cfg.TTSTimeout != 5*time.Second {
		t.Errorf("unexpected tts config %s %s", cfg.TTSBackend, cfg.TTSTimeout)
	}
	if !cfg.TelegramEnabled() || cfg.TelegramChatID != 1139929360 || !cfg.ExposeErrorDetails {
		t.Error("expected telegram and error details enabled")
	}
}

func TestErrorsAreAggregated(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")
	t.Setenv("TRANSLATOR_BACKEND", "openai")
	t.Setenv("TTS_BACKEND", "festival")
	t.Setenv("TRANSLATE_TIMEOUT", "soon")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if n := len(multierr.Errors(err)); n != 4 {
		t.Fatalf("expected 4 aggregated errors, got %d: %v", n, err)
	}
	for _, want := range []string{"PORT", "OPENAI_API_KEY", "TTS_BACKEND", "TRANSLATE_TIMEOUT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %s in %v", want, err)
		}
	}
}
