package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/local_translator/internal/config"
	"github.com/Vovarama1992/local_translator/internal/delivery"
	"github.com/Vovarama1992/local_translator/internal/error_notificator"
	"github.com/Vovarama1992/local_translator/internal/speech"
	"github.com/Vovarama1992/local_translator/internal/translation"
	"github.com/Vovarama1992/local_translator/internal/workflow"

	"go.uber.org/zap"
)

const serviceName = "local_translator"

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	baseLogger, err := newZap(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// ENGINES (translation / TTS)
	// =========================================================================

	translator := newTranslator(cfg)
	tts := newSynthesizer(cfg)

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var errInfra error_notificator.Notificator = error_notificator.NopInfra{}
	if cfg.TelegramEnabled() {
		tg, err := error_notificator.NewTelegramInfra(cfg.TelegramToken, cfg.TelegramChatID, serviceName)
		if err != nil {
			zl.Log(logger.LogEntry{Level: "warn", Message: "telegram notifications disabled", Service: serviceName, Error: err})
		} else {
			errInfra = tg
		}
	}
	errService := error_notificator.NewService(errInfra, zl, serviceName)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	translationService := translation.NewService(translator, cfg.TranslateTimeout, baseLogger.Named("translation"))
	speechService := speech.NewService(tts, cfg.TTSTimeout, baseLogger.Named("speech"))
	workflowService := workflow.NewService(translationService, speechService, baseLogger.Named("workflow"))

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	handler := delivery.NewHandler(
		translationService,
		speechService,
		workflowService,
		errService,
		zl,
		delivery.Options{Service: serviceName, ExposeDetails: cfg.ExposeErrorDetails},
	)
	r := delivery.NewRouter(cfg.APIPrefix, handler)

	// =========================================================================
	// START SERVER
	// =========================================================================

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "listening at " + cfg.Addr() + " (translator=" + cfg.TranslatorBackend + ", tts=" + cfg.TTSBackend + ")",
			Service: serviceName,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Log(logger.LogEntry{Level: "error", Message: "shutdown failed", Service: serviceName, Error: err})
	}
}

func newZap(cfg config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newTranslator(cfg config.Config) translation.Translator {
	switch cfg.TranslatorBackend {
	case config.TranslatorOpenAI:
		return translation.NewOpenAITranslator(cfg.OpenAIKey, cfg.OpenAIModel)
	case config.TranslatorStub:
		return translation.NewStubTranslator()
	default:
		return translation.NewGoogleTranslator(cfg.GoogleTranslateURL, cfg.TranslateTimeout)
	}
}

func newSynthesizer(cfg config.Config) speech.Synthesizer {
	switch cfg.TTSBackend {
	case config.TTSElevenLabs:
		return speech.NewElevenLabsClient(speech.ElevenLabsOptions{
			APIKey:  cfg.ElevenLabsKey,
			BaseURL: cfg.ElevenLabsURL,
			VoiceID: cfg.ElevenLabsVoice,
			Model:   cfg.ElevenLabsModel,
		})
	case config.TTSOpenAI:
		return speech.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIVoice)
	case config.TTSStub:
		return speech.NewStubSynthesizer()
	default:
		return speech.NewGTTSClient(cfg.GoogleTTSURL, &http.Client{Timeout: cfg.TTSTimeout})
	}
}
