package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLocale(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestNewTranslations(t *testing.T) {
	t.Run("Should load default english messages", func(t *testing.T) {
		trans, err := NewTranslations("en", t.TempDir())

		require.NoError(t, err)
		assert.Contains(t, trans.GetMessage("no_config_file", 0, nil), "No custom rules")
	})

	t.Run("Should load locale files from the locales directory", func(t *testing.T) {
		dir := t.TempDir()
		createTestLocale(t, dir, "active.es.toml", `
[no_config_file]
other = "No se encontró un archivo TOML de reglas personalizadas."
`)

		trans, err := NewTranslations("es", dir)

		require.NoError(t, err)
		assert.Contains(t, trans.GetMessage("no_config_file", 0, nil), "No se encontró")
	})

	t.Run("Should fail with a malformed locale file", func(t *testing.T) {
		dir := t.TempDir()
		createTestLocale(t, dir, "active.es.toml", "not toml at [all")

		_, err := NewTranslations("es", dir)

		assert.Error(t, err)
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("Should switch to a loaded language", func(t *testing.T) {
		dir := t.TempDir()
		createTestLocale(t, dir, "active.es.toml", `
[commit_updated]
other = "actualizado"
`)

		trans, err := NewTranslations("en", dir)
		require.NoError(t, err)

		require.NoError(t, trans.SetLanguage("es"))
		assert.Equal(t, "actualizado", trans.GetMessage("commit_updated", 0, nil))
	})

	t.Run("Should reject an unsupported language", func(t *testing.T) {
		trans, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("fr"))
	})
}

func TestGetMessage(t *testing.T) {
	t.Run("Should interpolate template data", func(t *testing.T) {
		trans, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		msg := trans.GetMessage("commit_failed", 0, map[string]interface{}{
			"Message": "feat: x",
			"Error":   "boom",
		})

		assert.Contains(t, msg, "feat: x")
		assert.Contains(t, msg, "boom")
	})

	t.Run("Should report missing translations", func(t *testing.T) {
		trans, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "Translation missing: nope", trans.GetMessage("nope", 0, nil))
	})
}
