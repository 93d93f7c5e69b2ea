// Package localization loads the bot's message strings from JSON files, one
// file per language code (e.g. "ru.json"), and serves them by key.
package localization

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Localizer serves translated strings. The bot runs in one configured
// language; GetLang exists for callers that need another.
type Localizer struct {
	translations map[string]map[string]string
	defaultLang  string
	mu           sync.RWMutex
}

// NewLocalizer loads every *.json file in dir as a language table and sets the
// default language used by Get.
func NewLocalizer(dir, defaultLang string) (*Localizer, error) {
	l := &Localizer{
		translations: make(map[string]map[string]string),
		defaultLang:  defaultLang,
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read localization directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		lang := strings.TrimSuffix(file.Name(), ".json")

		data, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("read localization file %s: %w", file.Name(), err)
		}
		var table map[string]string
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse localization file %s: %w", file.Name(), err)
		}
		l.translations[lang] = table
	}

	if _, ok := l.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("no translations for default language %q", defaultLang)
	}
	return l, nil
}

// Get returns the string for the key in the default language, falling back to
// the key itself so a missing translation is visible, not fatal.
func (l *Localizer) Get(key string) string {
	return l.GetLang(l.defaultLang, key)
}

// GetLang returns the string for the key in the given language, falling back
// to "en" and then to the key itself.
func (l *Localizer) GetLang(lang, key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if table, ok := l.translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if lang != "en" {
		if table, ok := l.translations["en"]; ok {
			if value, ok := table[key]; ok {
				return value
			}
		}
	}
	return key
}
