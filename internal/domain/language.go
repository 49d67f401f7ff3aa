package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported catalog language code.
type Language string

const (
	LanguagePersian Language = "fa"
	LanguageEnglish Language = "en"
)

var supportedLanguages = []Language{LanguagePersian, LanguageEnglish}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.Persian,
	language.English,
})

// SupportedLanguages returns the languages every catalog must define.
func SupportedLanguages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

func (l Language) String() string { return string(l) }

// Tag returns the BCP 47 tag of l.
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

// ParseLanguage accepts exactly one of the supported codes, byte for byte.
func ParseLanguage(code string) (Language, error) {
	l := Language(code)
	for _, s := range supportedLanguages {
		if l == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}

// MatchLanguage maps a platform locale such as "en-US" or "fa-IR" to the
// closest supported language, or fallback when nothing matches.
func MatchLanguage(locale string, fallback Language) Language {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return fallback
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fallback
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return fallback
	}
	return supportedLanguages[idx]
}
