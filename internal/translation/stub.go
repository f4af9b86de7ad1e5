package translation

import (
	"context"

	"github.com/Vovarama1992/local_translator/internal/language"
)

// StubTranslator — детерминированный перевод для локального запуска
// (TRANSLATOR_BACKEND=stub) и тестов.
type StubTranslator struct {
	// Dictionary: [код языка][исходный текст] → перевод.
	// Если записи нет, возвращается "[code] text".
	Dictionary map[language.Code]map[string]string
}

func NewStubTranslator() *StubTranslator {
	return &StubTranslator{
		Dictionary: map[language.Code]map[string]string{
			"ta": {"hello": "வணக்கம்"},
			"te": {"hello": "నమస్కారం"},
			"hi": {"hello": "नमस्ते"},
		},
	}
}

func (s *StubTranslator) Translate(ctx context.Context, text string, source, target language.Code) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if dict, ok := s.Dictionary[target]; ok {
		if tr, ok := dict[text]; ok {
			return tr, nil
		}
	}
	return "[" + string(target) + "] " + text, nil
}
