package speech

import (
	"context"

	"github.com/Vovarama1992/local_translator/internal/language"
)

// StubSynthesizer — фейковый mp3: заголовок ID3, затем код языка и текст.
// Для локального запуска (TTS_BACKEND=stub) и тестов.
type StubSynthesizer struct{}

func NewStubSynthesizer() *StubSynthesizer {
	return &StubSynthesizer{}
}

func (s *StubSynthesizer) Synthesize(ctx context.Context, text string, code language.Code) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []byte("ID3")
	out = append(out, code...)
	out = append(out, ':')
	out = append(out, text...)
	return out, nil
}
