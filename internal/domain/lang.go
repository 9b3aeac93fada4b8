package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Lang is a Wiktionary language code ("en", "fr", "grc", ...).
// The special code "simple" marks Simple English, which is both a
// language and its own edition.
type Lang string

// Edition is one language-specific snapshot of the Wiktionary dataset
// (the extraction of that language's wiktionary covering entries for
// all languages). Edition codes are a subset of language codes.
type Edition string

const (
	LangSimple    Lang    = "simple"
	EditionSimple Edition = "simple"
)

// langNames maps every supported language code to its English name.
var langNames = map[Lang]string{
	"af":     "Afrikaans",
	"afb":    "Gulf Arabic",
	"ar":     "Arabic",
	"bg":     "Bulgarian",
	"ca":     "Catalan",
	"cs":     "Czech",
	"da":     "Danish",
	"de":     "German",
	"el":     "Greek",
	"en":     "English",
	"eo":     "Esperanto",
	"es":     "Spanish",
	"fa":     "Persian",
	"fi":     "Finnish",
	"fr":     "French",
	"ga":     "Irish",
	"grc":    "Ancient Greek",
	"he":     "Hebrew",
	"hi":     "Hindi",
	"hu":     "Hungarian",
	"hy":     "Armenian",
	"id":     "Indonesian",
	"is":     "Icelandic",
	"it":     "Italian",
	"ja":     "Japanese",
	"ko":     "Korean",
	"ku":     "Kurdish",
	"la":     "Latin",
	"lt":     "Lithuanian",
	"lv":     "Latvian",
	"mg":     "Malagasy",
	"nl":     "Dutch",
	"no":     "Norwegian",
	"pl":     "Polish",
	"pt":     "Portuguese",
	"ro":     "Romanian",
	"ru":     "Russian",
	"sh":     "Serbo-Croatian",
	"simple": "Simple English",
	"sk":     "Slovak",
	"sl":     "Slovenian",
	"sq":     "Albanian",
	"sv":     "Swedish",
	"th":     "Thai",
	"tr":     "Turkish",
	"uk":     "Ukrainian",
	"vi":     "Vietnamese",
	"zh":     "Chinese",
}

// editionNames maps the editions kaikki.org extracts to their names.
var editionNames = map[Edition]string{
	"de":     "German",
	"el":     "Greek",
	"en":     "English",
	"es":     "Spanish",
	"fr":     "French",
	"it":     "Italian",
	"ja":     "Japanese",
	"ko":     "Korean",
	"ku":     "Kurdish",
	"mg":     "Malagasy",
	"pl":     "Polish",
	"pt":     "Portuguese",
	"ru":     "Russian",
	"simple": "Simple English",
	"th":     "Thai",
	"zh":     "Chinese",
}

// ParseLang validates a language code. Codes are case-insensitive.
func ParseLang(code string) (Lang, error) {
	l := Lang(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := langNames[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLang, code)
	}
	return l, nil
}

// ParseEdition validates an edition code. Codes are case-insensitive.
func ParseEdition(code string) (Edition, error) {
	e := Edition(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := editionNames[e]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEdition, code)
	}
	return e, nil
}

func (l Lang) String() string { return string(l) }

// Name returns the English name of the language, or "" for unknown codes.
func (l Lang) Name() string { return langNames[l] }

func (e Edition) String() string { return string(e) }

// Name returns the English name of the edition language, or "" for unknown codes.
func (e Edition) Name() string { return editionNames[e] }

// Lang returns the edition's own language. Edition codes double as
// language codes, including "simple".
func (e Edition) Lang() Lang { return Lang(e) }

// AllLangs returns every supported language code, sorted.
func AllLangs() []Lang {
	langs := make([]Lang, 0, len(langNames))
	for l := range langNames {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// AllEditions returns every supported edition code, sorted.
func AllEditions() []Edition {
	editions := make([]Edition, 0, len(editionNames))
	for e := range editionNames {
		editions = append(editions, e)
	}
	sort.Slice(editions, func(i, j int) bool { return editions[i] < editions[j] })
	return editions
}
