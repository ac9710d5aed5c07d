package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticLookupAndSubstitution(t *testing.T) {
	tr := Static(map[string]string{
		"greeting": "Hello {name}, you have {count} events",
	})

	assert.Equal(t, "Hello Ada, you have 3 events", tr.T("greeting", "name", "Ada", "count", "3"))
	assert.Equal(t, "missing_key", tr.T("missing_key"), "missing keys fall back to the key itself")
}

func TestLoadWithLocaleFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langs.json")
	data := `{"en": {"hi": "Hello", "only_en": "English only"}, "pl": {"hi": "Cześć"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	tr, err := Load(path, "pl", "en")
	require.NoError(t, err)
	assert.Equal(t, "Cześć", tr.T("hi"))
	assert.Equal(t, "English only", tr.T("only_en"), "falls back to the default locale")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), "en", "en")
	assert.Error(t, err)
}
