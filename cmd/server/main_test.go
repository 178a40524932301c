package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cours-de-latin/langdata"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg, err := langdata.New()
	require.NoError(t, err)
	srv := httptest.NewServer(newHandler(reg, zap.NewNop(), []string{"*"}))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

func TestSyllables(t *testing.T) {
	srv := newTestServer(t)

	var got syllablesResponse
	status := getJSON(t, srv.URL+"/api/syllables?word=readability", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, syllablesResponse{Word: "readability", Lang: "en", Syllables: 5}, got)

	status = getJSON(t, srv.URL+"/api/syllables?word=lopen&lang=nl", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, got.Syllables)

	tests := []string{
		"/api/syllables",
		"/api/syllables?word=bonjour&lang=fr",
		"/api/syllables?word=%20&lang=de",
	}
	for _, path := range tests {
		var e errorResponse
		assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+path, &e), path)
		assert.NotEmpty(t, e.Error, path)
	}
}

func TestTables(t *testing.T) {
	srv := newTestServer(t)

	var got tablesResponse
	status := getJSON(t, srv.URL+"/api/tables?lang=de", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "de", got.Lang)
	require.Len(t, got.Words, 6)
	assert.Equal(t, langdata.CategoryToBeVerb, got.Words[0].Name)
	assert.Contains(t, got.Words[0].Pattern, "gewesen")
	require.Len(t, got.Beginnings, 6)

	var e errorResponse
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/api/tables?lang=fr", &e))
}

func TestMeasures(t *testing.T) {
	srv := newTestServer(t)

	body := `{"text":"A tokenized sentence .\nAnother sentence ."}`
	resp, err := http.Post(srv.URL+"/api/measures", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Lang string                `json:"lang"`
		Info langdata.SentenceInfo `json:"sentence_info"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "en", got.Lang)
	assert.Equal(t, 5, got.Info.Words)
	assert.Equal(t, 2, got.Info.Sentences)

	for _, body := range []string{`not json`, `{"text":""}`, `{"text":". ."}`, `{"text":"x","lang":"fr"}`} {
		resp, err := http.Post(srv.URL+"/api/measures", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/measures")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/languages", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestLanguagesAndCORS(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/languages", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	var got languagesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "English", got.Languages["en"])
	assert.Len(t, got.Languages, 3)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitList(" http://a, ,http://b "))
	assert.Nil(t, splitList(""))
}
