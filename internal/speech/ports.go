package speech

import (
	"context"

	"github.com/Vovarama1992/local_translator/internal/language"
)

// Synthesizer — движок озвучки. Возвращает готовый mp3 целиком.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, code language.Code) ([]byte, error)
}
