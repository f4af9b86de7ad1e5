package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

const (
	TranslatorGoogle = "google"
	TranslatorOpenAI = "openai"
	TranslatorStub   = "stub"

	TTSGTTS       = "gtts"
	TTSElevenLabs = "elevenlabs"
	TTSOpenAI     = "openai"
	TTSStub       = "stub"
)

type Config struct {
	Host      string
	Port      string
	APIPrefix string
	Env       string

	TranslatorBackend string
	TTSBackend        string

	TranslateTimeout time.Duration
	TTSTimeout       time.Duration

	GoogleTranslateURL string
	GoogleTTSURL       string

	OpenAIKey   string
	OpenAIModel string
	OpenAIVoice string

	ElevenLabsKey   string
	ElevenLabsVoice string
	ElevenLabsModel string
	ElevenLabsURL   string

	TelegramToken  string
	TelegramChatID int64

	ExposeErrorDetails bool
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c Config) Development() bool {
	return c.Env == "development"
}

func (c Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Load читает .env (если есть) и окружение. Все ошибки собираются разом.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	var errs error

	cfg := Config{
		Host:      getenv("HOST", "0.0.0.0"),
		Port:      getenv("PORT", "8000"),
		APIPrefix: "/" + strings.Trim(getenv("API_PREFIX", "/api/v1"), "/"),
		Env:       getenv("APP_ENV", "production"),

		TranslatorBackend: strings.ToLower(getenv("TRANSLATOR_BACKEND", TranslatorGoogle)),
		TTSBackend:        strings.ToLower(getenv("TTS_BACKEND", TTSGTTS)),

		GoogleTranslateURL: os.Getenv("GOOGLE_TRANSLATE_URL"),
		GoogleTTSURL:       os.Getenv("GOOGLE_TTS_URL"),

		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: getenv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIVoice: getenv("OPENAI_TTS_VOICE", "alloy"),

		ElevenLabsKey:   os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoice: os.Getenv("ELEVENLABS_VOICE_ID"),
		ElevenLabsModel: os.Getenv("ELEVENLABS_MODEL"),
		ElevenLabsURL:   os.Getenv("ELEVENLABS_URL"),

		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.APIPrefix == "/" {
		cfg.APIPrefix = ""
	}

	var err error
	if cfg.TranslateTimeout, err = duration("TRANSLATE_TIMEOUT", 15*time.Second); err != nil {
		errs = multierr.Append(errs, err)
	}
	if cfg.TTSTimeout, err = duration("TTS_TIMEOUT", 30*time.Second); err != nil {
		errs = multierr.Append(errs, err)
	}

	if v := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); v != "" {
		if cfg.TelegramChatID, err = strconv.ParseInt(v, 10, 64); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("TELEGRAM_ADMIN_CHAT_ID: %w", err))
		}
	}

	if v := os.Getenv("EXPOSE_ERROR_DETAILS"); v != "" {
		if cfg.ExposeErrorDetails, err = strconv.ParseBool(v); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("EXPOSE_ERROR_DETAILS: %w", err))
		}
	}

	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("PORT %q is not a valid port", cfg.Port))
	}

	switch cfg.TranslatorBackend {
	case TranslatorGoogle, TranslatorStub:
	case TranslatorOpenAI:
		if cfg.OpenAIKey == "" {
			errs = multierr.Append(errs, fmt.Errorf("OPENAI_API_KEY not set (TRANSLATOR_BACKEND=openai)"))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown TRANSLATOR_BACKEND %q", cfg.TranslatorBackend))
	}

	switch cfg.TTSBackend {
	case TTSGTTS, TTSStub:
	case TTSOpenAI:
		if cfg.OpenAIKey == "" {
			errs = multierr.Append(errs, fmt.Errorf("OPENAI_API_KEY not set (TTS_BACKEND=openai)"))
		}
	case TTSElevenLabs:
		if cfg.ElevenLabsKey == "" {
			errs = multierr.Append(errs, fmt.Errorf("ELEVENLABS_API_KEY not set (TTS_BACKEND=elevenlabs)"))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown TTS_BACKEND %q", cfg.TTSBackend))
	}

	if errs != nil {
		return Config{}, errs
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return def, fmt.Errorf("%s must be positive, got %s", key, v)
	}
	return d, nil
}
