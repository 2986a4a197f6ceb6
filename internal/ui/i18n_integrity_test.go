package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in every locale file, and that no locale carries orphan keys.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := map[string]bool{
		config.TKeyWinTitle:    true,
		config.TKeyTermHelp:    true,
		config.TKeyTermLoading: true,
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
			require.NoError(t, err, "Must load locale file for %s", lang)

			var jsonMap map[string]interface{}
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for key := range keysToCheck {
				assert.Containsf(t, jsonMap, key, "Key '%s' defined in config.go is missing in %s", key, lang)
			}
			for jsonKey := range jsonMap {
				assert.Truef(t, keysToCheck[jsonKey], "Key '%s' exists in %s but is not defined in config.go", jsonKey, lang)
			}
		})
	}
}
