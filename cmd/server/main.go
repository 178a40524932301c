// Command server exposes syllable counts, category tables and readability
// measures as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/syllables?word=<word>[&lang=en]
//	GET  /api/tables?lang=<code>
//	POST /api/measures   body: {"text":"...","lang":"en"}
//	GET  /api/languages
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/cours-de-latin/langdata"
)

// ---- JSON response types ------------------------------------------------

type syllablesResponse struct {
	Word      string `json:"word"`
	Lang      string `json:"lang"`
	Syllables int    `json:"syllables"`
}

type ruleJSON struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

type tablesResponse struct {
	Lang       string     `json:"lang"`
	Words      []ruleJSON `json:"words"`
	Beginnings []ruleJSON `json:"beginnings"`
}

type measuresRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type measuresResponse struct {
	Lang string `json:"lang"`
	*langdata.Measures
}

type languagesResponse struct {
	Languages map[string]string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

const maxBodyBytes = 1 << 20

func toRulesJSON(t *langdata.RuleTable) []ruleJSON {
	out := make([]ruleJSON, 0, t.Len())
	t.Each(func(name string, m langdata.Matcher) bool {
		out = append(out, ruleJSON{Name: name, Pattern: m.String()})
		return true
	})
	return out
}

// langParam returns the "lang" query parameter, defaulting to English.
func langParam(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return "en"
}

// statusFor maps library errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, langdata.ErrUnsupportedLanguage),
		errors.Is(err, langdata.ErrInvalidInput),
		errors.Is(err, langdata.ErrNoWords):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type api struct {
	reg *langdata.Registry
	log *zap.Logger
}

func (a *api) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Warn("encode response", zap.Error(err))
	}
}

func (a *api) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, errorResponse{Error: msg})
}

func (a *api) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		a.log.Error("request failed", zap.Error(err))
	}
	a.writeError(w, status, err.Error())
}

// ---- handlers -----------------------------------------------------------

func (a *api) handleSyllables(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		a.writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	lang := langParam(r)
	n, err := a.reg.CountSyllables(word, lang)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, syllablesResponse{Word: word, Lang: lang, Syllables: n})
}

func (a *api) handleTables(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	lang := langParam(r)
	words, beginnings, err := a.reg.Tables(lang)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, tablesResponse{
		Lang:       lang,
		Words:      toRulesJSON(words),
		Beginnings: toRulesJSON(beginnings),
	})
}

func (a *api) handleMeasures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		a.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body measuresRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		a.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}
	if body.Lang == "" {
		body.Lang = "en"
	}
	lang, err := a.reg.Language(body.Lang)
	if err != nil {
		a.fail(w, err)
		return
	}
	m, err := lang.Measure(body.Text)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, measuresResponse{Lang: body.Lang, Measures: m})
}

func (a *api) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	a.writeJSON(w, http.StatusOK, languagesResponse{Languages: a.reg.Languages()})
}

func (a *api) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		a.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

// newHandler builds the routed API wrapped in CORS and request logging.
func newHandler(reg *langdata.Registry, log *zap.Logger, origins []string) http.Handler {
	a := &api{reg: reg, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/syllables", a.handleSyllables)
	mux.HandleFunc("/api/tables", a.handleTables)
	mux.HandleFunc("/api/measures", a.handleMeasures)
	mux.HandleFunc("/api/languages", a.handleLanguages)

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return a.logRequests(c.Handler(mux))
}

// ---- main ---------------------------------------------------------------

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	// A missing .env is fine; the environment and flags still apply.
	envErr := godotenv.Load()

	addr := flag.String("addr", getenv("READABILITY_ADDR", ":8080"), "listen address")
	cacheSize := flag.Int("cache-size", 4096, "English syllable cache entries")
	exceptions := flag.String("exceptions", os.Getenv("READABILITY_EXCEPTIONS"), "extra syllable exception file")
	origins := flag.String("cors-origins", getenv("READABILITY_CORS_ORIGINS", "*"), "comma-separated allowed CORS origins")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger, err := zap.NewProduction()
	if *debug {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.Warn("read .env", zap.Error(envErr))
	}

	cache, err := langdata.NewLRUCache(*cacheSize)
	if err != nil {
		logger.Fatal("syllable cache", zap.Error(err))
	}
	opts := []langdata.Option{langdata.WithCache(cache), langdata.WithLogger(logger)}
	if *exceptions != "" {
		opts = append(opts, langdata.WithExceptionsFile(*exceptions))
	}
	reg, err := langdata.New(opts...)
	if err != nil {
		logger.Fatal("build language registry", zap.Error(err))
	}

	logger.Info("listening", zap.String("addr", *addr), zap.Strings("languages", reg.Codes()))
	if err := http.ListenAndServe(*addr, newHandler(reg, logger, splitList(*origins))); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
