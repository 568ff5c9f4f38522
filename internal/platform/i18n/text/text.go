// Package text holds translatable strings read from content data.
package text

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/louisbranch/gamedata/internal/platform/jsondata"
)

// Text is a display string with optional per-locale translations.
//
// The zero value is an empty text.
type Text struct {
	str          string
	translations []string
	matcher      language.Matcher
}

// Plain returns an untranslated text.
func Plain(s string) Text {
	return Text{str: s}
}

// New builds a text from a base string and translations keyed by BCP 47
// locale.
func New(str string, translations map[string]string) (Text, error) {
	t := Text{str: str}
	if len(translations) == 0 {
		return t, nil
	}

	locales := make([]string, 0, len(translations))
	for locale := range translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	supported := []language.Tag{language.Und}
	for _, locale := range locales {
		tag, err := language.Parse(strings.TrimSpace(locale))
		if err != nil {
			return Text{}, err
		}
		t.translations = append(t.translations, translations[locale])
		supported = append(supported, tag)
	}
	t.matcher = language.NewMatcher(supported)
	return t, nil
}

// String returns the base string.
func (t Text) String() string {
	return t.str
}

// Translate returns the translation that best matches tag, falling back to the
// base string when no translation is close enough.
func (t Text) Translate(tag language.Tag) string {
	if t.matcher == nil {
		return t.str
	}
	_, index, confidence := t.matcher.Match(tag)
	if confidence == language.No || index == 0 {
		return t.str
	}
	return t.translations[index-1]
}

// Read reads a translatable member. The member may be a plain string or an
// object of the form {"str": "...", "ctxt": "...", "i18n": {"pt-BR": "..."}}.
// Read satisfies jsondata.Reader.
func Read(o *jsondata.Object, name string) (Text, error) {
	member := o.Member(name)
	if member.IsString() {
		s, err := member.Str()
		if err != nil {
			return Text{}, err
		}
		return Plain(s), nil
	}
	if !member.IsObject() {
		return Text{}, o.Fail("expected string or translation object", name)
	}

	obj, err := member.Object()
	if err != nil {
		return Text{}, err
	}
	str, err := obj.String("str")
	if err != nil {
		return Text{}, err
	}
	// The translator context only matters to translation tooling.
	if obj.Has("ctxt") {
		if _, err := obj.String("ctxt"); err != nil {
			return Text{}, err
		}
	}

	translations := map[string]string{}
	if obj.Has("i18n") {
		i18n, err := obj.Object("i18n")
		if err != nil {
			return Text{}, err
		}
		for _, locale := range i18n.Keys() {
			value, err := i18n.String(locale)
			if err != nil {
				return Text{}, err
			}
			translations[locale] = value
		}
	}

	t, err := New(str, translations)
	if err != nil {
		return Text{}, obj.Fail("invalid locale in translations: "+err.Error(), "i18n")
	}
	return t, nil
}
