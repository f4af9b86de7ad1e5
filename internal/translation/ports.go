package translation

import (
	"context"

	"github.com/Vovarama1992/local_translator/internal/language"
)

// Translator — движок перевода (Google, OpenAI).
type Translator interface {
	Translate(ctx context.Context, text string, source, target language.Code) (string, error)
}

// Result — ответ /translate; неизменяем после возврата.
type Result struct {
	OriginalText   string            `json:"original_text"`
	TranslatedText string            `json:"translated_text"`
	SourceLanguage language.Code     `json:"source_language"`
	TargetLanguage language.Language `json:"target_language"`
}
