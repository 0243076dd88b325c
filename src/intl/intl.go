// Package intl implements the localized strings shown by the sources, like filter names and warnings.
package intl

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Intl looks up localized strings by key.
// Keys missing in the selected language fall back to English, then to the key itself.
type Intl struct {
	tag      language.Tag
	strings  map[string]string
	fallback map[string]string
	printer  *message.Printer
}

var availableLanguages = []language.Tag{
	language.English,
	language.Indonesian,
}

var matcher = language.NewMatcher(availableLanguages)

// New returns an Intl for the language that best matches lang, like "id" or "en-US"
func New(lang string) *Intl {
	_, index, _ := matcher.Match(language.Make(lang))
	tag := availableLanguages[index]

	return &Intl{
		tag:      tag,
		strings:  translations[tag],
		fallback: translations[language.English],
		printer:  message.NewPrinter(tag),
	}
}

// Language returns the matched language tag
func (i *Intl) Language() language.Tag {
	return i.tag
}

// Get returns the string for key
func (i *Intl) Get(key string) string {
	if value, ok := i.strings[key]; ok {
		return value
	}
	if value, ok := i.fallback[key]; ok {
		return value
	}

	return key
}

// Format returns the string for key formatted with args
func (i *Intl) Format(key string, args ...any) string {
	return i.printer.Sprintf(i.Get(key), args...)
}

// Title returns s title cased following the language rules, like "manhwa" to "Manhwa"
func (i *Intl) Title(s string) string {
	// a Caser keeps state, so it can't be shared between goroutines
	return cases.Title(i.tag).String(strings.TrimSpace(s))
}
