package delivery

import (
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/local_translator/internal/apperr"
	"github.com/Vovarama1992/local_translator/internal/language"
	"github.com/Vovarama1992/local_translator/internal/ports"
	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	translation ports.TranslationService
	speech      ports.SpeechService
	workflow    ports.WorkflowService
	notifier    ports.ErrorNotifier
	log         *logger.ZapLogger

	service       string
	exposeDetails bool
}

type Options struct {
	Service       string
	ExposeDetails bool
}

func NewHandler(
	tr ports.TranslationService,
	tts ports.SpeechService,
	flow ports.WorkflowService,
	notifier ports.ErrorNotifier,
	log *logger.ZapLogger,
	opts Options,
) *Handler {
	return &Handler{
		translation:   tr,
		speech:        tts,
		workflow:      flow,
		notifier:      notifier,
		log:           log,
		service:       opts.Service,
		exposeDetails: opts.ExposeDetails,
	}
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

type speechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type languageInfo struct {
	Name    language.Language `json:"name"`
	Code    language.Code     `json:"code"`
	Display string            `json:"display"`
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("Invalid request body: %v", err)
	}
	return nil
}

func parseLanguage(name string) (language.Language, error) {
	l, err := language.Parse(name)
	if err != nil {
		return l, apperr.Validation("%s", err.Error())
	}
	return l, nil
}

// POST /translate
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	lang, err := parseLanguage(req.TargetLanguage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.translation.Translate(r.Context(), req.Text, language.CodeFor(lang))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// POST /text-to-speech
func (h *Handler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req speechRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	lang, err := parseLanguage(req.Language)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	audio, err := h.speech.Synthesize(r.Context(), req.Text, language.CodeFor(lang))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", "attachment; filename=speech.mp3")
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}

// POST /translate-and-speak
func (h *Handler) TranslateAndSpeak(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	lang, err := parseLanguage(req.TargetLanguage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// audio_data ([]byte) кодируется в base64 самим json
	res, err := h.workflow.TranslateAndSpeak(r.Context(), req.Text, lang)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// GET /languages
func (h *Handler) Languages(w http.ResponseWriter, _ *http.Request) {
	all := language.All()
	out := make([]languageInfo, 0, len(all))
	for _, l := range all {
		out = append(out, languageInfo{Name: l, Code: language.CodeFor(l), Display: l.DisplayName()})
	}
	writeJSON(w, http.StatusOK, out)
}
