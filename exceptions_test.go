package langdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExceptions(t *testing.T) {
	in := `! comment
Tottered 2

  chummed   1
`
	m, err := LoadExceptions(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"tottered": 2, "chummed": 1}, m)
}

func TestLoadExceptionsErrors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tottered\n", "line 1"},
		{"ok 1\ntottered 2 3\n", "line 2"},
		{"tottered two\n", "bad syllable count"},
		{"tottered -1\n", "bad syllable count"},
	}
	for _, tt := range tests {
		_, err := LoadExceptions(strings.NewReader(tt.in))
		require.Error(t, err, tt.in)
		assert.Contains(t, err.Error(), tt.want)
	}
}

func TestEnglishExceptionsCopy(t *testing.T) {
	a := EnglishExceptions()
	a["tottered"] = 9
	b := EnglishExceptions()
	assert.Equal(t, 2, b["tottered"])
	assert.Equal(t, 2, b["mrs"])
	assert.Equal(t, 2, b["sombre"])
}

func TestWithExceptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.txt")
	require.NoError(t, os.WriteFile(path, []byte("fire 2\n"), 0o644))

	r := newTestRegistry(t, WithExceptionsFile(path))
	n, err := r.CountSyllables("Fire", "en")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = New(WithExceptionsFile(filepath.Join(t.TempDir(), "missing.txt")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
