// Package workflow — перевод и озвучка одной цепочкой для /translate-and-speak.
package workflow

import (
	"context"
	"time"

	"github.com/Vovarama1992/local_translator/internal/apperr"
	"github.com/Vovarama1992/local_translator/internal/language"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

type Service struct {
	translator Translator
	tts        Synthesizer
	log        *zap.Logger
}

func NewService(translator Translator, tts Synthesizer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		translator: translator,
		tts:        tts,
		log:        log,
	}
}

// TranslateAndSpeak переводит text и озвучивает перевод.
// Шаги строго последовательные; если озвучка упала, перевод не возвращается.
func (s *Service) TranslateAndSpeak(ctx context.Context, text string, target language.Language) (Result, error) {
	// 1) валидация до любых внешних вызовов
	if text == "" {
		return Result{}, apperr.Validation("Text cannot be empty")
	}
	if !target.Valid() {
		return Result{}, apperr.Validation("Unsupported language: %s", target)
	}

	// 2) код движка; один и тот же для перевода и озвучки
	code := language.CodeFor(target)
	start := time.Now()

	// 3) перевод
	tr, err := s.translator.Translate(ctx, text, code)
	if err != nil {
		return Result{}, err
	}

	// 4-5) озвучка переведённого текста
	audio, err := s.tts.Synthesize(ctx, tr.TranslatedText, code)
	if err != nil {
		return Result{}, err
	}

	s.log.Info("translate-and-speak done",
		zap.Stringer("language", target),
		zap.String("audio", humanize.Bytes(uint64(len(audio)))),
		zap.Duration("elapsed", time.Since(start)),
	)

	// 6) сборка
	return Result{
		OriginalText:   text,
		TranslatedText: tr.TranslatedText,
		AudioData:      audio,
	}, nil
}
