package ports

import (
	"context"

	"github.com/Vovarama1992/local_translator/internal/language"
	"github.com/Vovarama1992/local_translator/internal/translation"
	"github.com/Vovarama1992/local_translator/internal/workflow"
)

// TranslationService — /translate
type TranslationService interface {
	Translate(ctx context.Context, text string, target language.Code) (translation.Result, error)
}

// SpeechService — /text-to-speech
type SpeechService interface {
	Synthesize(ctx context.Context, text string, code language.Code) ([]byte, error)
}

// WorkflowService — /translate-and-speak
type WorkflowService interface {
	TranslateAndSpeak(ctx context.Context, text string, target language.Language) (workflow.Result, error)
}

// ErrorNotifier — уведомление админа о падении движка, не блокирует запрос
type ErrorNotifier interface {
	NotifyAsync(err error, details string)
}
