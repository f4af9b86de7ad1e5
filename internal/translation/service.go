package translation

import (
	"context"
	"errors"
	"time"

	"github.com/Vovarama1992/local_translator/internal/apperr"
	"github.com/Vovarama1992/local_translator/internal/language"
	"go.uber.org/zap"
)

const failedMsg = "Translation failed"

type Service struct {
	engine  Translator
	timeout time.Duration
	log     *zap.Logger
}

func NewService(engine Translator, timeout time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		engine:  engine,
		timeout: timeout,
		log:     log,
	}
}

// Translate переводит text с английского на язык target.
func (s *Service) Translate(ctx context.Context, text string, target language.Code) (Result, error) {
	if text == "" {
		return Result{}, apperr.Validation("Text cannot be empty")
	}

	lang, ok := language.ForCode(target)
	if !ok {
		return Result{}, apperr.Validation("Unsupported language: %s", target)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	translated, err := s.engine.Translate(ctx, text, language.Source, target)
	if err != nil {
		s.log.Warn("translation engine failed",
			zap.String("code", string(target)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return Result{}, apperr.Upstream(failedMsg, err)
	}
	if translated == "" {
		return Result{}, apperr.Upstream(failedMsg, errors.New("engine returned empty translation"))
	}

	s.log.Debug("translated",
		zap.String("code", string(target)),
		zap.Int("chars", len([]rune(text))),
		zap.Duration("elapsed", time.Since(start)),
	)

	return Result{
		OriginalText:   text,
		TranslatedText: translated,
		SourceLanguage: language.Source,
		TargetLanguage: lang,
	}, nil
}
