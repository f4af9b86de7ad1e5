package speech

import (
	"context"
	"errors"
	"time"

	"github.com/Vovarama1992/local_translator/internal/apperr"
	"github.com/Vovarama1992/local_translator/internal/language"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const failedMsg = "Failed to generate speech"

type Service struct {
	tts     Synthesizer
	timeout time.Duration
	log     *zap.Logger
}

func NewService(tts Synthesizer, timeout time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		tts:     tts,
		timeout: timeout,
		log:     log,
	}
}

// Synthesize озвучивает text на языке code.
func (s *Service) Synthesize(ctx context.Context, text string, code language.Code) ([]byte, error) {
	if text == "" {
		return nil, apperr.Validation("Text cannot be empty")
	}
	if _, ok := language.ForCode(code); !ok {
		return nil, apperr.Validation("Unsupported language: %s", code)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	audio, err := s.tts.Synthesize(ctx, text, code)
	if err != nil {
		s.log.Warn("tts engine failed",
			zap.String("code", string(code)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, apperr.Upstream(failedMsg, err)
	}
	if len(audio) == 0 {
		return nil, apperr.Upstream(failedMsg, errors.New("engine returned empty audio"))
	}

	s.log.Debug("synthesized",
		zap.String("code", string(code)),
		zap.String("size", humanize.Bytes(uint64(len(audio)))),
		zap.Duration("elapsed", time.Since(start)),
	)

	return audio, nil
}
