package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter — chi-роутер с открытым CORS (авторизации нет, защищать нечего).
// Credentials не разрешаем: с Origin "*" браузер такой ответ отвергает.
func NewRouter(prefix string, h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{"*"},
	}))

	RegisterRoutes(r, prefix, h)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	return r
}

func RegisterRoutes(r chi.Router, prefix string, h *Handler) {
	routes := func(pr chi.Router) {
		pr.Use(h.recoverer)

		pr.Post("/translate", h.Translate)
		pr.Post("/text-to-speech", h.TextToSpeech)
		pr.Post("/translate-and-speak", h.TranslateAndSpeak)
		pr.Get("/languages", h.Languages)
	}

	if prefix == "" {
		r.Group(routes)
		return
	}
	r.Route(prefix, routes)
}
