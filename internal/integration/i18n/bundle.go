// Package i18n provides localized messages for API responses.
package i18n

import (
	"embed"
	"fmt"
	"regexp"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/uz"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed messages_*.yaml
var messageFS embed.FS

var placeholderPattern = regexp.MustCompile(`\{\d+\}`)

// supported lists every locale with a message file.
var supported = []struct {
	tag        language.Tag
	translator locales.Translator
}{
	{language.English, en.New()},
	{language.Russian, ru.New()},
	{language.Uzbek, uz.New()},
}

// Bundle resolves message keys to localized text.
type Bundle struct {
	universal     *ut.UniversalTranslator
	matcher       language.Matcher
	locales       []string
	defaultLocale string
	placeholders  map[string]int // key -> number of {n} placeholders
}

// NewBundle loads the embedded message files. Unknown default locales fall back to English.
func NewBundle(defaultLocale string) (*Bundle, error) {
	b := &Bundle{
		placeholders: make(map[string]int),
	}

	// The matcher falls back to its first tag, so the default locale goes first.
	tags := make([]language.Tag, 0, len(supported))
	translators := make([]locales.Translator, 0, len(supported))
	for _, s := range supported {
		if s.translator.Locale() == defaultLocale {
			tags = append([]language.Tag{s.tag}, tags...)
			translators = append([]locales.Translator{s.translator}, translators...)
			continue
		}
		tags = append(tags, s.tag)
		translators = append(translators, s.translator)
	}

	b.universal = ut.New(translators[0], translators...)
	b.matcher = language.NewMatcher(tags)
	b.defaultLocale = translators[0].Locale()
	for _, t := range translators {
		b.locales = append(b.locales, t.Locale())
	}

	for _, locale := range b.locales {
		if err := b.load(locale); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Bundle) load(locale string) error {
	data, err := messageFS.ReadFile("messages_" + locale + ".yaml")
	if err != nil {
		return fmt.Errorf("failed to read messages for %s: %w", locale, err)
	}

	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("failed to parse messages for %s: %w", locale, err)
	}

	trans, _ := b.universal.GetTranslator(locale)
	for key, text := range messages {
		if err := trans.Add(key, text, false); err != nil {
			return fmt.Errorf("failed to add message %s for %s: %w", key, locale, err)
		}
		if n := len(placeholderPattern.FindAllString(text, -1)); n > b.placeholders[key] {
			b.placeholders[key] = n
		}
	}
	return nil
}

// DefaultLocale returns the locale used when a request names none of the supported ones.
func (b *Bundle) DefaultLocale() string {
	return b.defaultLocale
}

// Locales returns the supported locales, default first.
func (b *Bundle) Locales() []string {
	return b.locales
}

// Match picks the best supported locale for an Accept-Language header value.
func (b *Bundle) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return b.defaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.defaultLocale
	}

	_, index, confidence := b.matcher.Match(tags...)
	if confidence == language.No {
		return b.defaultLocale
	}
	return b.locales[index]
}

// Message renders key in locale. Missing keys fall back to the default locale
// and then to the key itself. Params fill the {0}, {1}... placeholders.
func (b *Bundle) Message(locale, key string, params ...string) string {
	params = b.fit(key, params)

	for _, candidate := range []string{locale, b.defaultLocale} {
		trans, found := b.universal.GetTranslator(candidate)
		if !found {
			continue
		}
		if text, err := trans.T(key, params...); err == nil {
			return text
		}
	}
	return key
}

// fit pads or trims params to the placeholder count of key, since the
// translator indexes params by placeholder position.
func (b *Bundle) fit(key string, params []string) []string {
	want := b.placeholders[key]
	if len(params) == want {
		return params
	}

	fitted := make([]string, want)
	copy(fitted, params)
	return fitted
}
