// Package i18n loads the translation catalogs and resolves message keys for
// the configured locale, falling back to English.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var catalogs embed.FS

// DefaultLocale is used for missing keys and unknown locales
const DefaultLocale = "en"

// Translator resolves message keys for one locale
type Translator struct {
	localizer *goi18n.Localizer
	lang      string
}

// NewBundle loads every embedded catalog into a go-i18n bundle
func NewBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}
	for _, e := range entries {
		p := path.Join("locales", e.Name())
		data, err := catalogs.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", p, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", p, err)
		}
	}
	return bundle, nil
}

// New returns a Translator for locale (a BCP 47 tag such as "es" or "en-GB")
func New(locale string) (*Translator, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return NewWithBundle(bundle, locale), nil
}

// NewWithBundle returns a Translator for locale backed by bundle
func NewWithBundle(bundle *goi18n.Bundle, locale string) *Translator {
	lang := DefaultLocale
	if tag, err := language.Parse(locale); err == nil {
		matcher := language.NewMatcher(bundle.LanguageTags())
		_, idx, conf := matcher.Match(tag)
		if conf != language.No {
			base, _ := bundle.LanguageTags()[idx].Base()
			lang = base.String()
		}
	}
	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, lang, DefaultLocale),
		lang:      lang,
	}
}

// Lang returns the base language the translator resolved to
func (t *Translator) Lang() string {
	return t.lang
}

// T returns the message for key, interpolating params into {{.Name}} style
// placeholders. Unknown keys come back unchanged.
func (t *Translator) T(key string, params map[string]any) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: params,
	})
	if err != nil {
		slog.Debug("missing translation", "key", key, "lang", t.lang, "error", err)
		if msg != "" {
			return msg
		}
		return key
	}
	return msg
}

// Has reports whether key resolves in the translator's locale chain,
// counting messages that only exist in the default locale
func (t *Translator) Has(key string) bool {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err == nil {
		return true
	}
	var notFound *goi18n.MessageNotFoundErr
	return errors.As(err, &notFound) && msg != ""
}
