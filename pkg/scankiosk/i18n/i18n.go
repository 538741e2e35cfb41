// Package i18n holds the kiosk's user-facing strings.
//
// Messages are embedded TOML files (locales/active.<lang>.toml) loaded into a
// go-i18n bundle. English is the source language and the fallback for any
// message missing from a translation.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	MsgUnknownBarcode = "UnknownBarcode"
	MsgScanPrompt     = "ScanPrompt"
	MsgBack           = "Back"
)

//go:embed locales/*.toml
var locales embed.FS

// Messages localizes UI strings for one locale.
type Messages struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// NewBundle loads every embedded locale.
func NewBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}
	}
	return bundle, nil
}

// New returns messages for locale, a BCP 47 tag such as "fr" or "de-CH".
// Unknown or malformed locales fall back to English.
func New(locale string) (*Messages, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	tag := language.English
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			matcher := language.NewMatcher(bundle.LanguageTags())
			_, idx, _ := matcher.Match(parsed)
			tag = bundle.LanguageTags()[idx]
		}
	}

	return &Messages{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// MustNew is New for the embedded bundle, which is known to parse.
func MustNew(locale string) *Messages {
	m, err := New(locale)
	if err != nil {
		panic(err)
	}
	return m
}

// Language is the locale messages are rendered in.
func (m *Messages) Language() language.Tag {
	return m.tag
}

// Get renders a message. Missing IDs render as the ID itself.
func (m *Messages) Get(id string, data map[string]any) string {
	s, err := m.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || s == "" {
		return id
	}
	return s
}

// UnknownBarcode is the toast for a code that is not in the catalog or
// belongs to a placeholder tile.
func (m *Messages) UnknownBarcode(code string) string {
	return m.Get(MsgUnknownBarcode, map[string]any{"Code": code})
}
