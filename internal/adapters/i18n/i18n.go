// Package i18n provides the localized message tables of the CLI as an
// opaque key to text lookup. Thai is the default locale, matching the
// original zClarity string tables; English is available via config.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const DefaultLocale = "th"

type Messages struct {
	locale   string
	table    map[string]string
	fallback map[string]string
}

var (
	loadOnce sync.Once
	tables   map[string]map[string]string
)

func loadTables() {
	tables = map[string]map[string]string{}

	entries, err := fs.Glob(localeFS, "locales/*.yaml")
	if err != nil {
		return
	}

	for _, entry := range entries {
		data, err := localeFS.ReadFile(entry)
		if err != nil {
			continue
		}

		table := map[string]string{}
		if err := yaml.Unmarshal(data, &table); err != nil {
			continue
		}

		locale := strings.TrimSuffix(filepath.Base(entry), ".yaml")
		tables[locale] = table
	}
}

// Locales lists the embedded locale tags.
func Locales() []string {
	loadOnce.Do(loadTables)

	locales := make([]string, 0, len(tables))
	for locale := range tables {
		locales = append(locales, locale)
	}
	return locales
}

// Supported reports whether a locale table is embedded for the tag.
func Supported(locale string) bool {
	loadOnce.Do(loadTables)

	_, ok := tables[locale]
	return ok
}

// For returns the message lookup for a locale. Unknown locales fall back to
// the default table.
func For(locale string) Messages {
	loadOnce.Do(loadTables)

	table, ok := tables[locale]
	if !ok {
		locale = DefaultLocale
		table = tables[DefaultLocale]
	}

	return Messages{
		locale:   locale,
		table:    table,
		fallback: tables[DefaultLocale],
	}
}

func (m Messages) Locale() string {
	return m.locale
}

// T resolves a message key. Missing keys fall back to the default locale,
// then to the key itself so a typo stays visible instead of rendering blank.
func (m Messages) T(key string) string {
	if text, ok := m.table[key]; ok {
		return text
	}
	if text, ok := m.fallback[key]; ok {
		return text
	}
	return key
}

// Tf resolves a key and applies fmt formatting.
func (m Messages) Tf(key string, args ...any) string {
	return fmt.Sprintf(m.T(key), args...)
}

// StateLabel maps a lifecycle state value to its localized label.
func (m Messages) StateLabel(state string) string {
	return m.T("state" + state)
}
