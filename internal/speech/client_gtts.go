package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/Vovarama1992/local_translator/internal/language"
)

const (
	DefaultGTTSURL = "https://translate.google.com/translate_tts"

	// Google TTS не принимает куски длиннее 100 символов
	gttsMaxChunk = 100
)

// GTTSClient повторяет поведение gTTS: текст режется на куски,
// каждый кусок озвучивается отдельно, mp3-фреймы склеиваются подряд.
type GTTSClient struct {
	url     string
	httpCli *http.Client
}

func NewGTTSClient(endpoint string, httpCli *http.Client) *GTTSClient {
	if endpoint == "" {
		endpoint = DefaultGTTSURL
	}
	if httpCli == nil {
		httpCli = http.DefaultClient
	}
	return &GTTSClient{
		url:     endpoint,
		httpCli: httpCli,
	}
}

func (c *GTTSClient) Synthesize(ctx context.Context, text string, code language.Code) ([]byte, error) {
	chunks := splitText(text, gttsMaxChunk)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no text to speak")
	}

	var audio []byte
	for i, chunk := range chunks {
		part, err := c.fetch(ctx, chunk, code, i, len(chunks))
		if err != nil {
			return nil, fmt.Errorf("gtts chunk %d/%d: %w", i+1, len(chunks), err)
		}
		audio = append(audio, part...)
	}
	return audio, nil
}

func (c *GTTSClient) fetch(ctx context.Context, chunk string, code language.Code, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", string(code))
	q.Set("q", chunk)
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Referer", "http://translate.google.com/")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("google tts %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("google tts: empty response")
	}
	return data, nil
}

// splitText режет текст сначала по знакам препинания, затем по словам так,
// чтобы каждый кусок был не длиннее limit рун. Куски из одной пунктуации выкидываются.
func splitText(text string, limit int) []string {
	var out []string
	for _, sentence := range splitSentences(text) {
		out = append(out, packWords(sentence, limit)...)
	}
	return out
}

func splitSentences(text string) []string {
	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		s := strings.TrimSpace(cur.String())
		cur.Reset()
		if strings.IndexFunc(s, isSpeakable) >= 0 {
			out = append(out, s)
		}
	}
	for _, r := range text {
		cur.WriteRune(r)
		if isSentenceBreak(r) {
			flush()
		}
	}
	flush()
	return out
}

func packWords(sentence string, limit int) []string {
	var (
		out []string
		cur []rune
	)
	for _, word := range strings.Fields(sentence) {
		w := []rune(word)
		for len(w) > limit {
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = nil
			}
			out = append(out, string(w[:limit]))
			w = w[limit:]
		}
		switch {
		case len(w) == 0:
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= limit:
			cur = append(append(cur, ' '), w...)
		default:
			out = append(out, string(cur))
			cur = w
		}
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}

func isSentenceBreak(r rune) bool {
	switch r {
	case '.', '?', '!', ';', ':', '\n', '।', '॥', '…', '¿', '¡':
		return true
	}
	return false
}

func isSpeakable(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
