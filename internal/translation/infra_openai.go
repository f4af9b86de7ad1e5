package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/local_translator/internal/language"
	openai "github.com/sashabaranov/go-openai"
)

type OpenAITranslator struct {
	client *openai.Client
	model  string
}

func NewOpenAITranslator(apiKey, model string) *OpenAITranslator {
	return NewOpenAITranslatorWithConfig(openai.DefaultConfig(apiKey), model)
}

func NewOpenAITranslatorWithConfig(cfg openai.ClientConfig, model string) *OpenAITranslator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranslator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAITranslator) Translate(ctx context.Context, text string, source, target language.Code) (string, error) {
	lang, ok := language.ForCode(target)
	if !ok {
		return "", fmt.Errorf("openai translate: unknown target %q", target)
	}

	prompt := fmt.Sprintf(
		"Translate the user's message from %s into %s. Reply with the translation only, without quotes or explanations.",
		sourceName(source), lang.DisplayName(),
	)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai translate: no choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func sourceName(code language.Code) string {
	if code == language.Source {
		return "English"
	}
	return string(code)
}
