package cambridge

import (
	"fmt"
	"net/url"
	"strings"
)

// Language selects which translation column of the entry page to
// extract and which dictionary the entry URL points at.
type Language string

const (
	LangEnglish            Language = "en"
	LangChineseSimplified  Language = "en-zh-s"
	LangChineseTraditional Language = "en-zh-t"
)

const DefaultBaseURL = "https://dictionary.cambridge.org/"

// entry page paths relative to the site base, per dictionary
var languagePaths = map[Language]string{
	LangEnglish:            "dictionary/english/",
	LangChineseSimplified:  "us/dictionary/english-chinese-simplified/",
	LangChineseTraditional: "us/dictionary/english-chinese-traditional/",
}

func ParseLanguage(s string) (Language, error) {
	lang := Language(s)
	_, ok := languagePaths[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
	}
	return lang, nil
}

// EntryURL builds the per-word entry page URL. It validates its inputs
// so that a bad word or language fails before any network I/O.
func EntryURL(base, word string, lang Language) (string, error) {
	if strings.TrimSpace(word) == "" {
		return "", ErrEmptyWord
	}
	path, ok := languagePaths[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, string(lang))
	}
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimSuffix(base, "/") + "/" + path + url.PathEscape(word), nil
}
