// Package i18n looks up user-facing strings in a JSON table of the form
// {"<locale>": {"<key>": "<text with {placeholders}>"}}.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Translator resolves string keys for one configured locale, falling back
// to the default locale and finally to the key itself, so a missing entry
// never breaks a response.
type Translator struct {
	tables map[string]map[string]string
	locale string
	defLoc string
}

// Load reads the translation table at path. locale is the preferred
// locale; defaultLocale is used when a key (or the whole locale) is
// missing.
func Load(path, locale, defaultLocale string) (*Translator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	var tables map[string]map[string]string
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("parse translations: %w", err)
	}
	return &Translator{tables: tables, locale: locale, defLoc: defaultLocale}, nil
}

// Static builds a translator from an in-memory table; used by tests and
// as an English fallback when no file is shipped.
func Static(table map[string]string) *Translator {
	return &Translator{
		tables: map[string]map[string]string{"en": table},
		locale: "en",
		defLoc: "en",
	}
}

// T resolves key and substitutes {name} placeholders from alternating
// name/value args.
func (t *Translator) T(key string, args ...string) string {
	text, ok := t.lookup(t.locale, key)
	if !ok {
		if text, ok = t.lookup(t.defLoc, key); !ok {
			text = key
		}
	}
	for i := 0; i+1 < len(args); i += 2 {
		text = strings.ReplaceAll(text, "{"+args[i]+"}", args[i+1])
	}
	return text
}

func (t *Translator) lookup(locale, key string) (string, bool) {
	table, ok := t.tables[locale]
	if !ok {
		return "", false
	}
	text, ok := table[key]
	return text, ok
}
