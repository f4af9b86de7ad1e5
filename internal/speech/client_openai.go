package speech

import (
	"context"
	"io"

	"github.com/Vovarama1992/local_translator/internal/language"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient озвучивает через /audio/speech. Язык модель определяет по тексту сама.
type OpenAIClient struct {
	client *openai.Client
	voice  openai.SpeechVoice
}

func NewOpenAIClient(apiKey, voice string) *OpenAIClient {
	return NewOpenAIClientWithConfig(openai.DefaultConfig(apiKey), voice)
}

func NewOpenAIClientWithConfig(cfg openai.ClientConfig, voice string) *OpenAIClient {
	if voice == "" {
		voice = string(openai.VoiceAlloy)
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		voice:  openai.SpeechVoice(voice),
	}
}

func (c *OpenAIClient) Synthesize(ctx context.Context, text string, _ language.Code) ([]byte, error) {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          c.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	return io.ReadAll(resp)
}
