package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGoogleTranslator(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("client") != "gtx" || q.Get("sl") != "en" || q.Get("tl") != "ta" || q.Get("dt") != "t" {
			http.Error(w, "bad query: "+r.URL.RawQuery, http.StatusBadRequest)
			return
		}
		if q.Get("q") != "Good morning. How are you?" {
			http.Error(w, "bad text", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`[[["காலை வணக்கம். ","Good morning. ",null,null,10],["நீங்கள் எப்படி இருக்கிறீர்கள்?","How are you?",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	g := NewGoogleTranslator(srv.URL, 5*time.Second)
	got, err := g.Translate(context.Background(), "Good morning. How are you?", "en", "ta")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	want := "காலை வணக்கம். நீங்கள் எப்படி இருக்கிறீர்கள்?"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestGoogleTranslatorHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGoogleTranslator(srv.URL, 5*time.Second)
	if _, err := g.Translate(context.Background(), "hello", "en", "hi"); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestParseGoogleResponseMalformed(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`not json`, `[]`, `[null]`, `[[]]`, `{"a":1}`} {
		if _, err := parseGoogleResponse([]byte(body)); err == nil {
			t.Errorf("expected error for %s", body)
		}
	}
}
