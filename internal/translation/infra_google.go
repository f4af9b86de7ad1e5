package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/local_translator/internal/language"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const DefaultGoogleURL = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator ходит в публичный endpoint Google Translate (тот же, что и googletrans).
type GoogleTranslator struct {
	url  string
	http *resty.Client
}

func NewGoogleTranslator(url string, timeout time.Duration) *GoogleTranslator {
	if url == "" {
		url = DefaultGoogleURL
	}
	return &GoogleTranslator{
		url:  url,
		http: resty.New().SetTimeout(timeout),
	}
}

func (g *GoogleTranslator) Translate(ctx context.Context, text string, source, target language.Code) (string, error) {
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     string(source),
			"tl":     string(target),
			"dt":     "t",
			"q":      text,
		}).
		Get(g.url)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("google translate: %s; body: %s", resp.Status(), resp.String())
	}

	return parseGoogleResponse(resp.Body())
}

// ответ — вложенные массивы: [[["перевод","оригинал",...], ...], ...]
func parseGoogleResponse(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode google translate: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("google translate: empty payload")
	}

	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("google translate: unexpected payload shape")
	}

	var b strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			b.WriteString(s)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("google translate: no translated segments")
	}
	return b.String(), nil
}
