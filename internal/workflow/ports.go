package workflow

import (
	"context"

	"github.com/Vovarama1992/local_translator/internal/language"
	"github.com/Vovarama1992/local_translator/internal/translation"
)

// Translator — реализует *translation.Service.
type Translator interface {
	Translate(ctx context.Context, text string, target language.Code) (translation.Result, error)
}

// Synthesizer — реализует *speech.Service.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, code language.Code) ([]byte, error)
}

// Result — итог перевода с озвучкой. Живёт только в пределах одного запроса.
type Result struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	AudioData      []byte `json:"audio_data"`
}
