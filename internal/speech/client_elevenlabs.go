package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Vovarama1992/local_translator/internal/language"
	"github.com/goccy/go-json"
)

const (
	DefaultElevenLabsURL   = "https://api.elevenlabs.io"
	DefaultElevenLabsModel = "eleven_flash_v2_5"
	DefaultElevenLabsVoice = "EXAVITQu4vr4xnSDxMaL" // Rachel
)

type ElevenLabsClient struct {
	apiKey  string
	baseURL string
	voiceID string
	model   string
	httpCli *http.Client
}

type ElevenLabsOptions struct {
	APIKey  string
	BaseURL string
	VoiceID string
	Model   string
	HTTP    *http.Client
}

func NewElevenLabsClient(opts ElevenLabsOptions) *ElevenLabsClient {
	c := &ElevenLabsClient{
		apiKey:  opts.APIKey,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		voiceID: opts.VoiceID,
		model:   opts.Model,
		httpCli: opts.HTTP,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultElevenLabsURL
	}
	if c.voiceID == "" {
		c.voiceID = DefaultElevenLabsVoice
	}
	if c.model == "" {
		c.model = DefaultElevenLabsModel
	}
	if c.httpCli == nil {
		c.httpCli = http.DefaultClient
	}
	return c
}

type elevenLabsRequest struct {
	Text         string `json:"text"`
	ModelID      string `json:"model_id"`
	LanguageCode string `json:"language_code,omitempty"`
}

// TEXT → SPEECH
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text string, code language.Code) ([]byte, error) {
	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, c.voiceID)

	payload, err := json.Marshal(elevenLabsRequest{
		Text:         text,
		ModelID:      c.model,
		LanguageCode: string(code),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("elevenlabs error %d: %s", resp.StatusCode, string(b))
	}

	return io.ReadAll(resp.Body)
}
