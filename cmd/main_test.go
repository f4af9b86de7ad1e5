package main

import (
	"fmt"
	"testing"

	"github.com/Vovarama1992/local_translator/internal/config"
	"github.com/Vovarama1992/local_translator/internal/speech"
	"github.com/Vovarama1992/local_translator/internal/translation"
	"go.uber.org/zap"
)

func TestNewTranslatorBackends(t *testing.T) {
	cases := map[string]any{
		config.TranslatorGoogle: &translation.GoogleTranslator{},
		config.TranslatorOpenAI: &translation.OpenAITranslator{},
		config.TranslatorStub:   &translation.StubTranslator{},
	}
	for backend, want := range cases {
		got := newTranslator(config.Config{TranslatorBackend: backend, OpenAIKey: "k"})
		if fmt.Sprintf("%T", got) != fmt.Sprintf("%T", want) {
			t.Errorf("%s: expected %T, got %T", backend, want, got)
		}
	}
}

func TestNewSynthesizerBackends(t *testing.T) {
	cases := map[string]any{
		config.TTSGTTS:       &speech.GTTSClient{},
		config.TTSElevenLabs: &speech.ElevenLabsClient{},
		config.TTSOpenAI:     &speech.OpenAIClient{},
		config.TTSStub:       &speech.StubSynthesizer{},
	}
	for backend, want := range cases {
		got := newSynthesizer(config.Config{TTSBackend: backend, OpenAIKey: "k", ElevenLabsKey: "k"})
		if fmt.Sprintf("%T", got) != fmt.Sprintf("%T", want) {
			t.Errorf("%s: expected %T, got %T", backend, want, got)
		}
	}
}

func TestNewZapDevelopment(t *testing.T) {
	l, err := newZap(config.Config{Env: "development"})
	if err != nil {
		t.Fatalf("newZap: %v", err)
	}
	defer l.Sync()
	if !l.Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected debug level in development")
	}
}
