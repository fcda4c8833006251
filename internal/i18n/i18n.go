// Package i18n holds the player-facing text of the console and Telegram
// front ends in English and Swedish.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var Swedish = language.Swedish

var supportedTags = []language.Tag{
	language.English,
	Swedish,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

func Default() language.Tag {
	return language.English
}

// Parse resolves a language name such as "sv" or "en-GB" to a supported
// tag. The bool is false when nothing supported matches.
func Parse(lang string) (language.Tag, bool) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return Default(), false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return Default(), false
	}
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return Default(), false
	}
	return supportedTags[idx], true
}

// Printer returns a printer for lang, falling back to English.
func Printer(lang string) *message.Printer {
	tag, _ := Parse(lang)
	return message.NewPrinter(tag)
}
